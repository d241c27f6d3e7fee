package widgets

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// allVariants builds one widget of every supported kind, in a fixed order.
func allVariants(t *testing.T) []Widget {
	t.Helper()

	graph := NewTimeseries(0, 0, 60, 30)
	graph.TitleText = "cpu"
	graph.TileDef.Requests = []Request{
		{
			Query: "avg:system.cpu.user{*}",
			Type:  "line",
			ConditionalFormats: []ConditionalFormat{
				{Color: WhiteOnYellow, Comparator: Greater, Value: 0.75},
				{Color: WhiteOnRed, Comparator: Greater, Value: 0.9},
			},
		},
	}

	value := NewQueryValue(60, 0, 20, 10, "avg:system.load.1{*}")
	value.ConditionalFormats = []ConditionalFormat{
		{Color: WhiteOnGreen, Comparator: Less, Value: 1},
	}

	toplist := NewToplist(0, 40, 40, 20)
	hostmap := NewHostMap(40, 40, 40, 20)
	alertGraph := NewAlertGraph(0, 60, 40, 20, 12345)
	alertValue := NewAlertValue(40, 60, 20, 10, 12345)
	check := NewCheckStatus(60, 60, 20, 10, "http.can_connect")
	stream := NewEventStream(0, 80, 40, 20, "sources:nagios")
	timeline := NewEventTimeline(40, 80, 40, 20, "sources:nagios")
	freeText := NewFreeText(0, 100, 40, 5, "owned by sre")
	note := NewNote(40, 100, 40, 10, "<b>runbook</b>")
	image, err := NewImage(0, 110, 20, 20, "https://example.com/logo.png")
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	iframe, err := NewIFrame(20, 110, 20, 20, "https://example.com/embed")
	if err != nil {
		t.Fatalf("NewIFrame() error = %v", err)
	}

	return []Widget{
		graph, value, toplist, hostmap, alertGraph, alertValue, check,
		stream, timeline, freeText, note, image, iframe,
	}
}

func TestBoard_roundTrip(t *testing.T) {
	t.Parallel()

	board := NewBoard("everything", allVariants(t)...)
	board.Description = "one widget of every kind"
	board.ReadOnly = true

	data, err := json.Marshal(board)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Board
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.Title != board.Title || decoded.Description != board.Description || decoded.ReadOnly != board.ReadOnly {
		t.Errorf("metadata mismatch: %#v", decoded)
	}
	if len(decoded.Widgets) != len(board.Widgets) {
		t.Fatalf("widget count = %d, want %d", len(decoded.Widgets), len(board.Widgets))
	}
	// order and concrete types must survive exactly
	for i := range board.Widgets {
		if decoded.Widgets[i].Kind() != board.Widgets[i].Kind() {
			t.Errorf("widget %d kind = %s, want %s", i, decoded.Widgets[i].Kind(), board.Widgets[i].Kind())
		}
	}
	if !reflect.DeepEqual(decoded.Widgets, board.Widgets) {
		t.Errorf("widgets mismatch\ngot = %#v\nwant= %#v", decoded.Widgets, board.Widgets)
	}
}

func TestBoard_unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantKinds []Type
		wantErr   string
	}{
		{
			name: "dispatches on the type tag",
			body: `{"board_title":"b","widgets":[
				{"type":"timeseries","x":0,"y":0,"width":60,"height":30,"tile_def":{"viz":"timeseries"}},
				{"type":"note","x":0,"y":30,"width":20,"height":10,"html":"hi"}]}`,
			wantKinds: []Type{TimeseriesType, NoteType},
		},
		{
			name:      "ignores unknown board fields",
			body:      `{"board_title":"b","created":"2013-09-10","widgets":[{"type":"iframe","url":"https://x"}]}`,
			wantKinds: []Type{IFrameType},
		},
		{
			name:      "ignores unknown widget fields",
			body:      `{"board_title":"b","widgets":[{"type":"free_text","text":"hi","board_id":7}]}`,
			wantKinds: []Type{FreeTextType},
		},
		{
			name:    "rejects unknown widget types",
			body:    `{"board_title":"b","widgets":[{"type":"pie_chart"}]}`,
			wantErr: "unknown widget type",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var board Board
			err := json.Unmarshal([]byte(tt.body), &board)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			kinds := make([]Type, 0, len(board.Widgets))
			for _, w := range board.Widgets {
				kinds = append(kinds, w.Kind())
			}
			if !reflect.DeepEqual(kinds, tt.wantKinds) {
				t.Errorf("kinds = %v, want %v", kinds, tt.wantKinds)
			}
		})
	}
}

func TestBoard_marshalEmptyWidgets(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewBoard("empty"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"widgets":[]`) {
		t.Errorf("Marshal() = %s, want an empty widgets array", data)
	}
}

func TestNewImage_requiresURL(t *testing.T) {
	t.Parallel()

	if _, err := NewImage(0, 0, 10, 10, ""); err == nil {
		t.Error("NewImage(\"\") expected an error")
	}
	if _, err := NewIFrame(0, 0, 10, 10, ""); err == nil {
		t.Error("NewIFrame(\"\") expected an error")
	}
}

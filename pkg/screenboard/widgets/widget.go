package widgets

import (
	"encoding/json"
	"fmt"
)

// Type discriminates widget variants in board JSON. The accepted values are
// fixed by the datadog screenboard API.
type Type string

const (
	TimeseriesType    Type = "timeseries"
	QueryValueType    Type = "query_value"
	ToplistType       Type = "toplist"
	HostMapType       Type = "hostmap"
	AlertGraphType    Type = "alert_graph"
	AlertValueType    Type = "alert_value"
	CheckStatusType   Type = "check_status"
	EventStreamType   Type = "event_stream"
	EventTimelineType Type = "event_timeline"
	FreeTextType      Type = "free_text"
	NoteType          Type = "note"
	ImageType         Type = "image"
	IFrameType        Type = "iframe"
)

// Widget is one visual element on a board.
type Widget interface {
	Kind() Type
}

// Frame carries the layout rectangle and title fields every widget shares.
type Frame struct {
	Type       Type   `json:"type"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      bool   `json:"title,omitempty"`
	TitleText  string `json:"title_text,omitempty"`
	TitleSize  int    `json:"title_size,omitempty"`
	TitleAlign string `json:"title_align,omitempty"`
}

func (f *Frame) Kind() Type { return f.Type }

func newFrame(t Type, x, y, width, height int) Frame {
	return Frame{Type: t, X: x, Y: y, Width: width, Height: height}
}

var decoders = map[Type]func() Widget{
	TimeseriesType:    func() Widget { return &Timeseries{} },
	QueryValueType:    func() Widget { return &QueryValue{} },
	ToplistType:       func() Widget { return &Toplist{} },
	HostMapType:       func() Widget { return &HostMap{} },
	AlertGraphType:    func() Widget { return &AlertGraph{} },
	AlertValueType:    func() Widget { return &AlertValue{} },
	CheckStatusType:   func() Widget { return &CheckStatus{} },
	EventStreamType:   func() Widget { return &EventStream{} },
	EventTimelineType: func() Widget { return &EventTimeline{} },
	FreeTextType:      func() Widget { return &FreeText{} },
	NoteType:          func() Widget { return &Note{} },
	ImageType:         func() Widget { return &Image{} },
	IFrameType:        func() Widget { return &IFrame{} },
}

func decodeWidget(raw json.RawMessage) (Widget, error) {
	var probe struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	newWidget, ok := decoders[probe.Type]
	if !ok {
		return nil, fmt.Errorf("unknown widget type: '%s'", probe.Type)
	}
	w := newWidget()
	if err := json.Unmarshal(raw, w); err != nil {
		return nil, err
	}
	return w, nil
}

package widgets

// EventStream lists the events matching a query.
type EventStream struct {
	Frame
	Query     string `json:"query,omitempty"`
	Timeframe string `json:"timeframe,omitempty"`
	EventSize string `json:"event_size,omitempty"`
}

func NewEventStream(x, y, width, height int, query string) *EventStream {
	return &EventStream{
		Frame: newFrame(EventStreamType, x, y, width, height),
		Query: query,
	}
}

// EventTimeline plots event counts matching a query over time.
type EventTimeline struct {
	Frame
	Query     string `json:"query,omitempty"`
	Timeframe string `json:"timeframe,omitempty"`
}

func NewEventTimeline(x, y, width, height int, query string) *EventTimeline {
	return &EventTimeline{
		Frame: newFrame(EventTimelineType, x, y, width, height),
		Query: query,
	}
}

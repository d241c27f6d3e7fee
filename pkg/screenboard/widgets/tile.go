package widgets

// TileDef describes what a graph-family widget renders.
type TileDef struct {
	Viz      string    `json:"viz,omitempty"`
	Requests []Request `json:"requests,omitempty"`
	Markers  []Marker  `json:"markers,omitempty"`
	Events   []Event   `json:"events,omitempty"`
}

// Request is a single metric query line on a graph.
type Request struct {
	Query              string              `json:"q,omitempty"`
	Type               string              `json:"type,omitempty"`
	Style              Style               `json:"style,omitempty"`
	ConditionalFormats []ConditionalFormat `json:"conditional_formats,omitempty"`
}

type Style struct {
	Palette string `json:"palette,omitempty"`
}

type Marker struct {
	Label string `json:"label,omitempty"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value,omitempty"`
}

type Event struct {
	Query string `json:"q"`
}

package widgets

// FreeText is a bare text label without a frame around it.
type FreeText struct {
	Frame
	Text      string `json:"text,omitempty"`
	Color     string `json:"color,omitempty"`
	FontSize  string `json:"font_size,omitempty"`
	TextAlign string `json:"text_align,omitempty"`
}

func NewFreeText(x, y, width, height int, text string) *FreeText {
	return &FreeText{
		Frame: newFrame(FreeTextType, x, y, width, height),
		Text:  text,
	}
}

// Note is a framed html annotation, optionally with a pointer tick.
type Note struct {
	Frame
	HTML         string `json:"html,omitempty"`
	Bgcolor      string `json:"bgcolor,omitempty"`
	FontSize     string `json:"font_size,omitempty"`
	TextAlign    string `json:"text_align,omitempty"`
	Tick         bool   `json:"tick,omitempty"`
	TickPos      string `json:"tick_pos,omitempty"`
	TickEdge     string `json:"tick_edge,omitempty"`
	AutoRefresh  bool   `json:"auto_refresh,omitempty"`
	RefreshEvery int    `json:"refresh_every,omitempty"`
}

func NewNote(x, y, width, height int, html string) *Note {
	return &Note{
		Frame:   newFrame(NoteType, x, y, width, height),
		HTML:    html,
		Bgcolor: "yellow",
	}
}

package widgets

import "encoding/json"

// Board is a screenboard: positioned widgets plus board level metadata.
// ID stays zero until the board has been persisted; datadog assigns it on
// create and it comes back populated on get.
type Board struct {
	ID          int      `json:"id,omitempty"`
	Title       string   `json:"board_title"`
	Description string   `json:"description,omitempty"`
	Widgets     []Widget `json:"widgets"`
	ReadOnly    bool     `json:"read_only,omitempty"`
}

func NewBoard(title string, boardWidgets ...Widget) *Board {
	return &Board{Title: title, Widgets: boardWidgets}
}

// AddWidget appends a widget; render order follows insertion order.
func (b *Board) AddWidget(w Widget) *Board {
	b.Widgets = append(b.Widgets, w)
	return b
}

// MarshalJSON keeps an empty widget list as [] rather than null, which is
// what the datadog API expects on create.
func (b *Board) MarshalJSON() ([]byte, error) {
	type alias Board
	a := alias(*b)
	if a.Widgets == nil {
		a.Widgets = []Widget{}
	}
	return json.Marshal(a)
}

// UnmarshalJSON decodes widgets through the type registry so each element
// comes back as its concrete variant. Unknown board fields are dropped,
// unknown widget types are an error.
func (b *Board) UnmarshalJSON(data []byte) error {
	var a struct {
		ID          int               `json:"id"`
		Title       string            `json:"board_title"`
		Description string            `json:"description"`
		Widgets     []json.RawMessage `json:"widgets"`
		ReadOnly    bool              `json:"read_only"`
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	decoded := make([]Widget, 0, len(a.Widgets))
	for _, raw := range a.Widgets {
		w, err := decodeWidget(raw)
		if err != nil {
			return err
		}
		decoded = append(decoded, w)
	}
	b.ID = a.ID
	b.Title = a.Title
	b.Description = a.Description
	b.Widgets = decoded
	b.ReadOnly = a.ReadOnly
	return nil
}

package widgets

import (
	"screenboard-client/pkg/errs"
)

// Color is the palette datadog accepts for conditional formatting.
type Color string

const (
	WhiteOnGreen  Color = "white_on_green"
	WhiteOnRed    Color = "white_on_red"
	WhiteOnYellow Color = "white_on_yellow"
	GreenOnWhite  Color = "green_on_white"
	RedOnWhite    Color = "red_on_white"
	YellowOnWhite Color = "yellow_on_white"
)

// Comparator is the relational operator applied to the metric value. The JSON
// values are the operator symbols themselves.
type Comparator string

const (
	Greater       Comparator = ">"
	GreaterEquals Comparator = ">="
	Less          Comparator = "<"
	LessEquals    Comparator = "<="
)

// ConditionalFormat recolors a widget once its metric crosses Value. Datadog
// evaluates a widget's rules in list order; this package only has to keep
// that order intact through serialization.
type ConditionalFormat struct {
	Color      Color      `json:"color"`
	Inverted   bool       `json:"invert"`
	Comparator Comparator `json:"comparator"`
	Value      float64    `json:"value"`
}

func NewConditionalFormat(color Color, inverted bool, comparator Comparator, value float64) (ConditionalFormat, error) {
	if color == "" {
		return ConditionalFormat{}, errs.NewInvalidArgument("color")
	}
	if comparator == "" {
		return ConditionalFormat{}, errs.NewInvalidArgument("comparator")
	}
	return ConditionalFormat{
		Color:      color,
		Inverted:   inverted,
		Comparator: comparator,
		Value:      value,
	}, nil
}

// DefaultConditionalFormat mirrors the defaults datadog assumes for a rule
// created without explicit values: white on green when the metric is above 0.
func DefaultConditionalFormat() ConditionalFormat {
	return ConditionalFormat{Color: WhiteOnGreen, Comparator: Greater}
}

func (f *ConditionalFormat) SetColor(color Color) error {
	if color == "" {
		return errs.NewInvalidArgument("color")
	}
	f.Color = color
	return nil
}

func (f *ConditionalFormat) SetComparator(comparator Comparator) error {
	if comparator == "" {
		return errs.NewInvalidArgument("comparator")
	}
	f.Comparator = comparator
	return nil
}

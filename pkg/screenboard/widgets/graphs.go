package widgets

// Timeseries plots one or more metric queries over a timeframe.
type Timeseries struct {
	Frame
	Timeframe  string  `json:"timeframe,omitempty"`
	Legend     bool    `json:"legend,omitempty"`
	LegendSize int     `json:"legend_size,omitempty"`
	TileDef    TileDef `json:"tile_def"`
}

func NewTimeseries(x, y, width, height int) *Timeseries {
	return &Timeseries{
		Frame:   newFrame(TimeseriesType, x, y, width, height),
		TileDef: TileDef{Viz: "timeseries"},
	}
}

// QueryValue shows the single current value of a metric query and is the main
// consumer of conditional formats.
type QueryValue struct {
	Frame
	Timeframe          string              `json:"timeframe,omitempty"`
	Aggregator         string              `json:"aggregator,omitempty"`
	Query              string              `json:"query,omitempty"`
	Unit               string              `json:"unit,omitempty"`
	Precision          int                 `json:"precision,omitempty"`
	TextAlign          string              `json:"text_align,omitempty"`
	TextSize           string              `json:"text_size,omitempty"`
	ConditionalFormats []ConditionalFormat `json:"conditional_formats,omitempty"`
}

func NewQueryValue(x, y, width, height int, query string) *QueryValue {
	return &QueryValue{
		Frame: newFrame(QueryValueType, x, y, width, height),
		Query: query,
	}
}

// Toplist ranks the top series of a query.
type Toplist struct {
	Frame
	Timeframe  string  `json:"timeframe,omitempty"`
	Legend     bool    `json:"legend,omitempty"`
	LegendSize int     `json:"legend_size,omitempty"`
	TileDef    TileDef `json:"tile_def"`
}

func NewToplist(x, y, width, height int) *Toplist {
	return &Toplist{
		Frame:   newFrame(ToplistType, x, y, width, height),
		TileDef: TileDef{Viz: "toplist"},
	}
}

// HostMap colors the infrastructure map by a metric query.
type HostMap struct {
	Frame
	Query      string  `json:"query,omitempty"`
	Timeframe  string  `json:"timeframe,omitempty"`
	Legend     bool    `json:"legend,omitempty"`
	LegendSize int     `json:"legend_size,omitempty"`
	TileDef    TileDef `json:"tile_def"`
}

func NewHostMap(x, y, width, height int) *HostMap {
	return &HostMap{
		Frame:   newFrame(HostMapType, x, y, width, height),
		TileDef: TileDef{Viz: "hostmap"},
	}
}

package widgets

// AlertGraph renders the timeseries a monitor is evaluating.
type AlertGraph struct {
	Frame
	AlertID      int    `json:"alert_id"`
	VizType      string `json:"viz_type,omitempty"`
	Timeframe    string `json:"timeframe,omitempty"`
	AddTimeframe bool   `json:"add_timeframe,omitempty"`
}

func NewAlertGraph(x, y, width, height, alertID int) *AlertGraph {
	return &AlertGraph{
		Frame:   newFrame(AlertGraphType, x, y, width, height),
		AlertID: alertID,
		VizType: "timeseries",
	}
}

// AlertValue shows the current value a monitor is evaluating.
type AlertValue struct {
	Frame
	AlertID      int    `json:"alert_id"`
	Precision    int    `json:"precision,omitempty"`
	Unit         string `json:"unit,omitempty"`
	TextAlign    string `json:"text_align,omitempty"`
	TextSize     string `json:"text_size,omitempty"`
	AddTimeframe bool   `json:"add_timeframe,omitempty"`
}

func NewAlertValue(x, y, width, height, alertID int) *AlertValue {
	return &AlertValue{
		Frame:   newFrame(AlertValueType, x, y, width, height),
		AlertID: alertID,
	}
}

// CheckStatus shows the status of a service check, optionally grouped by tags.
type CheckStatus struct {
	Frame
	Check     string `json:"check,omitempty"`
	Group     string `json:"group,omitempty"`
	Grouping  string `json:"grouping,omitempty"`
	Tags      string `json:"tags,omitempty"`
	Timeframe string `json:"timeframe,omitempty"`
	TextAlign string `json:"text_align,omitempty"`
	TextSize  string `json:"text_size,omitempty"`
}

func NewCheckStatus(x, y, width, height int, check string) *CheckStatus {
	return &CheckStatus{
		Frame: newFrame(CheckStatusType, x, y, width, height),
		Check: check,
	}
}

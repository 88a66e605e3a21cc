package live

// command is one input event relayed from a connected browser.
type command struct {
	Cmd    string  `json:"cmd"`
	Key    string  `json:"key,omitempty"`
	StartX float64 `json:"startX,omitempty"`
	EndX   float64 `json:"endX,omitempty"`
	On     bool    `json:"on,omitempty"`
	Target int     `json:"target,omitempty"`
}

// wireOp is one render operation broadcast to viewers. Field meaning depends
// on Op; unused fields stay at their zero value.
type wireOp struct {
	Op       string  `json:"op"`
	Slide    int     `json:"slide,omitempty"`
	Shape    int     `json:"shape"`
	On       bool    `json:"on"`
	Current  int     `json:"current,omitempty"`
	Total    int     `json:"total,omitempty"`
	Fraction float64 `json:"fraction,omitempty"`
	Control  string  `json:"control,omitempty"`
	Delay    float64 `json:"delay"`
	Duration float64 `json:"duration"`
}

// frame batches the render operations of one controller handler so viewers
// apply them atomically and in order.
type frame struct {
	Ops []wireOp `json:"ops"`
}

package gamemath

// Window is an absolute deadline on the simulation clock. The zero value has
// already elapsed for any non-negative time.
type Window struct {
	Until float64 `json:"until"`
}

// OpenWindow starts a window of the given duration at now.
func OpenWindow(now, duration float64) Window {
	return Window{Until: now + duration}
}

// Open reports whether now is still strictly before the deadline.
func (w Window) Open(now float64) bool {
	return now < w.Until
}

// Reached reports whether the deadline has been hit (now >= Until).
func (w Window) Reached(now float64) bool {
	return now >= w.Until
}

// Passed reports whether now is strictly after the deadline.
func (w Window) Passed(now float64) bool {
	return now > w.Until
}

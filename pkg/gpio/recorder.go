package gpio

// Event is one recorded line change.
type Event struct {
	Line Line
	High bool
}

// Recorder is an in-memory Driver that keeps every line change. It is used
// to check the scan-out sequence without hardware.
type Recorder struct {
	Events []Event

	levels [NumLines]bool
	rising [NumLines]int
}

// Set records the change and counts rising edges.
func (r *Recorder) Set(l Line, high bool) {
	r.Events = append(r.Events, Event{Line: l, High: high})
	if high && !r.levels[l] {
		r.rising[l]++
	}
	r.levels[l] = high
}

// Pulses returns the number of low to high transitions seen on l.
func (r *Recorder) Pulses(l Line) int {
	return r.rising[l]
}

// Level returns the last level written to l.
func (r *Recorder) Level(l Line) bool {
	return r.levels[l]
}

// Reset forgets all events and edge counts but keeps the line levels.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
	r.rising = [NumLines]int{}
}

package tui

import "time"

// fpsWindow is the span the frame rate is averaged over.
const fpsWindow = time.Second

// FPSMeter measures the real frame rate from tick timestamps.
type FPSMeter struct {
	stamps []time.Time
}

// NewFPSMeter creates an empty meter.
func NewFPSMeter() *FPSMeter {
	return &FPSMeter{}
}

// Tick records a frame at t.
func (m *FPSMeter) Tick(t time.Time) {
	m.stamps = append(m.stamps, t)

	// Drop frames older than the window, keeping one as the interval start.
	cut := 0
	for cut < len(m.stamps)-2 && t.Sub(m.stamps[cut+1]) >= fpsWindow {
		cut++
	}
	if cut > 0 {
		m.stamps = append(m.stamps[:0], m.stamps[cut:]...)
	}
}

// FPS returns frames per second over the recorded window, or 0 before two
// frames have been seen.
func (m *FPSMeter) FPS() float64 {
	n := len(m.stamps)
	if n < 2 {
		return 0
	}
	span := m.stamps[n-1].Sub(m.stamps[0])
	if span <= 0 {
		return 0
	}
	return float64(n-1) / span.Seconds()
}

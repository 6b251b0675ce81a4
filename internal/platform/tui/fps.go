package tui

import "math"

// fpsWindow is how often, in seconds, the frame rate is recomputed.
const fpsWindow = 0.25

// FPSMeter counts frames and reports the rate over the last window.
type FPSMeter struct {
	elapsed float64
	frames  int
	fps     int
}

// Update records one frame that took dt seconds.
func (f *FPSMeter) Update(dt float64) {
	if f.elapsed > fpsWindow {
		f.fps = int(math.Round(float64(f.frames) / f.elapsed))
		f.elapsed = 0
		f.frames = 0
	}
	f.elapsed += dt
	f.frames++
}

// FPS returns the most recent frame rate.
func (f FPSMeter) FPS() int {
	return f.fps
}

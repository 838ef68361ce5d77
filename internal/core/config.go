package core

// DefaultTickRate is the frame rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a frontend runs a session with: the terminal size,
// the frame clock and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second
	Seed     int64 // 0 means pick one at start
}

// FrameMillis returns the duration of one frame in milliseconds.
func (c RuntimeConfig) FrameMillis() int64 {
	if c.TickRate <= 0 {
		return 1000 / DefaultTickRate
	}
	return int64(1000 / c.TickRate)
}

// FrameTime returns the session time in milliseconds after n fixed frames.
func (c RuntimeConfig) FrameTime(n int) int64 {
	return int64(n) * c.FrameMillis()
}

// ResolveSeed replaces a zero seed with pick().
func (c RuntimeConfig) ResolveSeed(pick func() int64) RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = pick()
	}
	return c
}

package tuxascii

// starGlyphs are the characters a background star may use.
var starGlyphs = [...]rune{'*', '.', '+', '·'}

// Star is a decorative background particle. It falls and wraps to the top.
type Star struct {
	X, Y  float64
	Speed float64
	Glyph rune
}

// NewStar places a star at a random arena position.
func NewStar(rng Rand) *Star {
	return &Star{
		X:     float64(randRange(rng, 0, int(ArenaWidth))),
		Y:     float64(randRange(rng, 0, int(ArenaHeight))),
		Speed: float64(randRange(rng, StarMinSpeed, StarMaxSpeed)),
		Glyph: starGlyphs[rng.Intn(len(starGlyphs))],
	}
}

// Update moves the star down and wraps it to the top edge at a new column
// once it passes the bottom.
func (s *Star) Update(rng Rand) {
	s.Y += s.Speed
	if s.Y > ArenaHeight {
		s.Y = 0
		s.X = float64(randRange(rng, 0, int(ArenaWidth)))
	}
}

func newStarfield(n int, rng Rand) []*Star {
	stars := make([]*Star, 0, n)
	for range n {
		stars = append(stars, NewStar(rng))
	}
	return stars
}

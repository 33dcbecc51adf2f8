package component

// LevelBounds stores the world-space bounds of the loaded level.
type LevelBounds struct {
	Level  string
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()

package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Probe is a keyboard-driven stand-in for the player body used to poke at
// level physics.
type Probe struct {
	Speed float64
}

var ProbeComponent = NewComponent[Probe]()

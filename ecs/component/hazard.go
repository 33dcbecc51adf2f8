package component

// HurtMarker tags entities that harm the player on contact.
type HurtMarker struct{}

var HurtMarkerComponent = NewComponent[HurtMarker]()

// Spike tracks how many times a spike has been triggered. The count only
// grows for the lifetime of the entity.
type Spike struct {
	deaths uint64
}

// AddDeath records one trigger of the spike.
func (s *Spike) AddDeath() {
	s.deaths++
}

func (s Spike) Deaths() uint64 {
	return s.deaths
}

var SpikeComponent = NewComponent[Spike]()

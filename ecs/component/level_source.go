package component

// LevelSource records which level cell or entity instance spawned an entity.
type LevelSource struct {
	Level      string
	Layer      string
	GridX      int
	GridY      int
	Value      int
	Identifier string
	Iid        string
}

var LevelSourceComponent = NewComponent[LevelSource]()

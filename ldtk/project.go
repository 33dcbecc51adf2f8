// Package ldtk reads the subset of the LDtk project format needed to spawn
// level physics: IntGrid layers and entity instances.
package ldtk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	ErrLevelNotFound  = errors.New("ldtk: level not found")
	ErrMalformedLayer = errors.New("ldtk: malformed layer")
)

type Project struct {
	JSONVersion     string  `json:"jsonVersion"`
	DefaultGridSize int     `json:"defaultGridSize"`
	Levels          []Level `json:"levels"`
}

type Level struct {
	Identifier     string          `json:"identifier"`
	Iid            string          `json:"iid"`
	WorldX         int             `json:"worldX"`
	WorldY         int             `json:"worldY"`
	PxWid          int             `json:"pxWid"`
	PxHei          int             `json:"pxHei"`
	LayerInstances []LayerInstance `json:"layerInstances"`
}

type LayerType string

const (
	LayerIntGrid   LayerType = "IntGrid"
	LayerEntities  LayerType = "Entities"
	LayerTiles     LayerType = "Tiles"
	LayerAutoLayer LayerType = "AutoLayer"
)

type LayerInstance struct {
	Identifier      string           `json:"__identifier"`
	Type            LayerType        `json:"__type"`
	CWid            int              `json:"__cWid"`
	CHei            int              `json:"__cHei"`
	GridSize        int              `json:"__gridSize"`
	PxTotalOffsetX  int              `json:"__pxTotalOffsetX"`
	PxTotalOffsetY  int              `json:"__pxTotalOffsetY"`
	Visible         bool             `json:"visible"`
	IntGridCSV      []int            `json:"intGridCsv"`
	EntityInstances []EntityInstance `json:"entityInstances"`
}

type EntityInstance struct {
	Identifier     string          `json:"__identifier"`
	Iid            string          `json:"iid"`
	Grid           [2]int          `json:"__grid"`
	Pivot          [2]float64      `json:"__pivot"`
	Tags           []string        `json:"__tags"`
	Px             [2]int          `json:"px"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	FieldInstances []FieldInstance `json:"fieldInstances"`
}

type FieldInstance struct {
	Identifier string          `json:"__identifier"`
	Type       string          `json:"__type"`
	Value      json.RawMessage `json:"__value"`
}

// Decode unmarshals the field value into v.
func (f FieldInstance) Decode(v any) error {
	if len(f.Value) == 0 {
		return fmt.Errorf("ldtk: field %s has no value", f.Identifier)
	}
	if err := json.Unmarshal(f.Value, v); err != nil {
		return fmt.Errorf("ldtk: decode field %s: %w", f.Identifier, err)
	}
	return nil
}

// Field returns the field instance with the given identifier.
func (e *EntityInstance) Field(identifier string) (FieldInstance, bool) {
	for _, f := range e.FieldInstances {
		if f.Identifier == identifier {
			return f, true
		}
	}
	return FieldInstance{}, false
}

// LoadProject reads an LDtk project from disk.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ldtk: read %s: %w", path, err)
	}
	return ParseProject(data)
}

// LoadProjectFS reads an LDtk project from fsys.
func LoadProjectFS(fsys fs.FS, name string) (*Project, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("ldtk: read %s: %w", name, err)
	}
	return ParseProject(data)
}

// ParseProject decodes project JSON and checks layer dimensions.
func ParseProject(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("ldtk: unmarshal project: %w", err)
	}
	for i := range p.Levels {
		lvl := &p.Levels[i]
		for j := range lvl.LayerInstances {
			if err := lvl.LayerInstances[j].validate(); err != nil {
				return nil, fmt.Errorf("ldtk: level %s: %w", lvl.Identifier, err)
			}
		}
	}
	return &p, nil
}

// Level returns the level with the given identifier. An empty identifier
// selects the first level.
func (p *Project) Level(identifier string) (*Level, error) {
	if p == nil || len(p.Levels) == 0 {
		return nil, fmt.Errorf("%w: project has no levels", ErrLevelNotFound)
	}
	if identifier == "" {
		return &p.Levels[0], nil
	}
	for i := range p.Levels {
		if p.Levels[i].Identifier == identifier {
			return &p.Levels[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, identifier)
}

func (l *LayerInstance) validate() error {
	if l.Type != LayerIntGrid {
		return nil
	}
	if l.CWid < 0 || l.CHei < 0 || l.GridSize <= 0 {
		return fmt.Errorf("%w: %s has grid %dx%d size %d", ErrMalformedLayer, l.Identifier, l.CWid, l.CHei, l.GridSize)
	}
	if len(l.IntGridCSV) != l.CWid*l.CHei {
		return fmt.Errorf("%w: %s has %d cells, want %d", ErrMalformedLayer, l.Identifier, len(l.IntGridCSV), l.CWid*l.CHei)
	}
	return nil
}

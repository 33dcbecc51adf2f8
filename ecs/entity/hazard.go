package entity

import (
	"github.com/milk9111/prismfall/ecs/component"
	"github.com/milk9111/prismfall/ldtk"
)

// SpikeForIntGrid returns fresh hazard state for an IntGrid tile.
func SpikeForIntGrid(v IntGridValue) component.Spike {
	switch v {
	case IntGridSpike:
		return component.Spike{}
	}
	panic("entity: no spike state for " + v.String())
}

func SpikeFromIntGridCell(cell ldtk.IntGridCell) (component.Spike, error) {
	v, err := ParseIntGridValue(cell.Value)
	if err != nil {
		return component.Spike{}, err
	}
	return SpikeForIntGrid(v), nil
}

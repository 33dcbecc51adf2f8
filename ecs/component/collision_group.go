package component

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
)

// GroupLabel is a bit-set of collision groups. Memberships and filters are
// combined with |.
type GroupLabel uint32

const (
	GroupTerrain GroupLabel = 1 << iota
	GroupLightRay
	GroupWhiteRay
	GroupPlayerCollider
	GroupPlayerSensor
	GroupLightSensor
	GroupCrystalShard
)

const (
	GroupNone GroupLabel = 0
	GroupAll  GroupLabel = ^GroupLabel(0)
)

var groupNames = [...]struct {
	label GroupLabel
	name  string
}{
	{GroupTerrain, "TERRAIN"},
	{GroupLightRay, "LIGHT_RAY"},
	{GroupWhiteRay, "WHITE_RAY"},
	{GroupPlayerCollider, "PLAYER_COLLIDER"},
	{GroupPlayerSensor, "PLAYER_SENSOR"},
	{GroupLightSensor, "LIGHT_SENSOR"},
	{GroupCrystalShard, "CRYSTAL_SHARD"},
}

// Has reports whether every bit of other is set in g.
func (g GroupLabel) Has(other GroupLabel) bool {
	return g&other == other
}

// Intersects reports whether g and other share at least one bit.
func (g GroupLabel) Intersects(other GroupLabel) bool {
	return g&other != 0
}

func (g GroupLabel) String() string {
	switch g {
	case GroupNone:
		return "NONE"
	case GroupAll:
		return "ALL"
	}
	var parts []string
	rest := g
	for _, n := range groupNames {
		if g&n.label != 0 {
			parts = append(parts, n.name)
			rest &^= n.label
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

var ErrUnknownGroup = errors.New("component: unknown collision group")

// ParseGroupLabel parses names as printed by String, for example
// "LIGHT_RAY|WHITE_RAY". Names are case sensitive.
func ParseGroupLabel(s string) (GroupLabel, error) {
	switch s {
	case "NONE":
		return GroupNone, nil
	case "ALL":
		return GroupAll, nil
	}
	var out GroupLabel
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		label, ok := groupByName(part)
		if !ok {
			return GroupNone, fmt.Errorf("%w %q", ErrUnknownGroup, part)
		}
		out |= label
	}
	return out, nil
}

func groupByName(name string) (GroupLabel, bool) {
	for _, n := range groupNames {
		if n.name == name {
			return n.label, true
		}
	}
	return GroupNone, false
}

// CollisionGroups pairs the groups a shape belongs to with the groups it
// accepts contacts from. Two shapes interact only when each one's
// memberships intersect the other's filters.
type CollisionGroups struct {
	Memberships GroupLabel
	Filters     GroupLabel
}

func NewCollisionGroups(memberships, filters GroupLabel) CollisionGroups {
	return CollisionGroups{Memberships: memberships, Filters: filters}
}

func (c CollisionGroups) Interacts(other CollisionGroups) bool {
	return c.Memberships.Intersects(other.Filters) && other.Memberships.Intersects(c.Filters)
}

// ShapeFilter maps the groups onto Chipmunk categories and mask, which use
// the same two-way test.
func (c CollisionGroups) ShapeFilter() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(c.Memberships), uint(c.Filters))
}

var CollisionGroupsComponent = NewComponent[CollisionGroups]()

package levels

import (
	"embed"

	"github.com/milk9111/prismfall/ldtk"
)

// DefaultProject is the project bundled with the binary.
const DefaultProject = "caves.ldtk"

//go:embed *.ldtk
var LevelsFS embed.FS

// LoadProject reads a bundled LDtk project.
func LoadProject(name string) (*ldtk.Project, error) {
	if name == "" {
		name = DefaultProject
	}
	return ldtk.LoadProjectFS(LevelsFS, name)
}

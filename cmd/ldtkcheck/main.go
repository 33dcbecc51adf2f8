// Command ldtkcheck reports level content that has no physics mapping.
//
//	ldtkcheck [-level Cave_0] levels/caves.ldtk
//
// Without a path the bundled project is checked. The exit status is 1 when
// anything is unsupported.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/prismfall/common"
	"github.com/milk9111/prismfall/ecs/entity"
	"github.com/milk9111/prismfall/ldtk"
	"github.com/milk9111/prismfall/levels"
	"github.com/sirupsen/logrus"
)

type problem struct {
	Level string
	Layer string
	X, Y  int
	// Exactly one of Value and Identifier is set.
	Value      int
	Identifier string
}

func (p problem) String() string {
	if p.Identifier != "" {
		return fmt.Sprintf("%s/%s (%d,%d): unsupported entity %q", p.Level, p.Layer, p.X, p.Y, p.Identifier)
	}
	return fmt.Sprintf("%s/%s (%d,%d): unsupported int grid value %d", p.Level, p.Layer, p.X, p.Y, p.Value)
}

// check lists unsupported content of one level, or of all levels when
// levelID is empty.
func check(project *ldtk.Project, reg *entity.Registry, levelID string) ([]problem, error) {
	lvls := project.Levels
	if levelID != "" {
		lvl, err := project.Level(levelID)
		if err != nil {
			return nil, err
		}
		lvls = []ldtk.Level{*lvl}
	}

	var out []problem
	for li := range lvls {
		lvl := &lvls[li]
		for i := range lvl.LayerInstances {
			layer := &lvl.LayerInstances[i]
			switch layer.Type {
			case ldtk.LayerIntGrid:
				layer.EachIntGridCell(func(c ldtk.GridCoords, cell ldtk.IntGridCell) {
					if !reg.SupportsIntCell(cell.Value) {
						out = append(out, problem{Level: lvl.Identifier, Layer: layer.Identifier, X: c.X, Y: c.Y, Value: cell.Value})
					}
				})
			case ldtk.LayerEntities:
				for _, inst := range layer.EntityInstances {
					if !reg.SupportsEntity(inst.Identifier) {
						out = append(out, problem{Level: lvl.Identifier, Layer: layer.Identifier, X: inst.Grid[0], Y: inst.Grid[1], Identifier: inst.Identifier})
					}
				}
			}
		}
	}
	return out, nil
}

func run(args []string, stdout io.Writer, log logrus.FieldLogger) int {
	fs := flag.NewFlagSet("ldtkcheck", flag.ContinueOnError)
	fs.SetOutput(stdout)
	levelID := fs.String("level", "", "only check this level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var (
		project *ldtk.Project
		err     error
		source  = levels.DefaultProject
	)
	if fs.NArg() > 0 {
		source = fs.Arg(0)
		project, err = ldtk.LoadProject(source)
	} else {
		project, err = levels.LoadProject("")
	}
	if err != nil {
		log.WithError(err).Error("load project")
		return 1
	}

	problems, err := check(project, entity.DefaultRegistry(), *levelID)
	if err != nil {
		log.WithError(err).Error("check project")
		return 1
	}
	for _, p := range problems {
		fmt.Fprintln(stdout, p)
	}
	log.WithFields(logrus.Fields{"project": source, "problems": len(problems)}).Info("check finished")
	if len(problems) > 0 {
		return 1
	}
	return 0
}

func main() {
	log := common.NewLogger(os.Stderr, os.Getenv("LOG_LEVEL"), common.LogFormatText)
	os.Exit(run(os.Args[1:], os.Stdout, log))
}

package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/prismfall/common"
	"github.com/milk9111/prismfall/settings"
)

func main() {
	settingsPath := flag.String("settings", "", "settings yaml (default: embedded settings)")
	projectPath := flag.String("project", "", "LDtk project on disk (overrides settings)")
	levelName := flag.String("level", "", "level identifier (overrides settings)")
	lenient := flag.Bool("lenient", false, "skip unsupported level content instead of failing")
	debug := flag.Bool("debug", false, "draw physics shapes")
	watch := flag.Bool("watch", false, "reload when the project or settings change")
	flag.Parse()

	cfg, err := settings.Load(*settingsPath)
	if err != nil {
		common.NewLogger(os.Stderr, "info", common.LogFormatText).WithError(err).Fatal("load settings")
	}
	applyFlags(&cfg, *projectPath, *levelName, *lenient, *debug, *watch)

	log := common.NewLogger(os.Stderr, cfg.LogLevel, common.LogFormatText)

	game, err := NewGame(cfg, *settingsPath, log)
	if err != nil {
		log.WithError(err).Fatal("start viewer")
	}
	defer game.Close()

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("prismfall")

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("run")
	}
}

func applyFlags(cfg *settings.Settings, project, level string, lenient, debug, watch bool) {
	if project != "" {
		cfg.Project = project
	}
	if level != "" {
		cfg.Level = level
	}
	cfg.Lenient = cfg.Lenient || lenient
	cfg.Debug = cfg.Debug || debug
	cfg.Watch = cfg.Watch || watch
}

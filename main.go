package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/Gautam-J/LCC-S2/config"
)

func main() {
	settingsPath := flag.String("settings", "", "settings yaml (default: embedded)")
	scriptPath := flag.String("script", "", "spawn director script (default: embedded)")
	assetDir := flag.String("assets", "", "directory of sprite sheets (default: generated placeholders)")
	dev := flag.Bool("dev", false, "watch settings/script files and hot-reload them")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	var prefs *config.PrefsStore
	manager, err := gdata.Open(gdata.Config{AppName: "lcc-s2"})
	if err != nil {
		log.Printf("prefs storage unavailable: %v", err)
		prefs = config.NewPrefsStore(nil)
	} else {
		prefs = config.NewPrefsStore(manager)
	}

	var watcher *config.Watcher
	if *dev {
		paths := watchPaths(*settingsPath, *scriptPath)
		if len(paths) == 0 {
			log.Printf("dev mode: nothing to watch, pass -settings or -script")
		} else {
			watcher, err = config.NewWatcher(paths...)
			if err != nil {
				log.Fatalf("watch: %v", err)
			}
			defer watcher.Close()
		}
	}

	game, err := NewGame(Options{
		SettingsPath: *settingsPath,
		ScriptPath:   *scriptPath,
		AssetDir:     *assetDir,
		Watcher:      watcher,
		Prefs:        prefs,
		Mute:         *mute,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(game.cfg.Width, game.cfg.Height)
	ebiten.SetWindowTitle(game.cfg.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func watchPaths(paths ...string) []string {
	var out []string
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

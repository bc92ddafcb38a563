package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"golang.org/x/term"

	"github.com/qnkhuat/blockfall/pkg/audio"
	"github.com/qnkhuat/blockfall/pkg/game"
	"github.com/qnkhuat/blockfall/pkg/gui"
	"github.com/qnkhuat/blockfall/pkg/log"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	logPath := flag.String("log", "", "path to log file, logging is off when empty")
	logLevel := flag.String("log-level", "info", "log level: error, warn, info, debug, trace")
	name := flag.String("name", "", "player name")
	themeName := flag.String("theme", "basic", "color theme")
	themesPath := flag.String("themes", "", "path to a JSON file of extra themes")
	seed := flag.Int64("seed", 0, "piece randomizer seed, time based when 0")
	randomizer := flag.String("randomizer", "", "piece randomizer: uniform or bag")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start blockfall: non-interactive terminals are not supported")
	}

	// The terminal belongs to the game, so logs only go to a file.
	if *logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := log.InitLog(*logPath, "CLIENT: ")
		if err != nil {
			log.Fatal("%s", err)
		}
		defer f.Close()
	}
	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		log.Fatal("%s", err)
	}
	log.SetLevel(level)

	cfg := game.DefaultConfig()
	if *configPath != "" {
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			log.Fatal("%s", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *randomizer != "" {
		cfg.Randomizer = *randomizer
	}

	var themes []gui.ThemeHex
	if *themesPath != "" {
		if themes, err = gui.LoadThemes(*themesPath); err != nil {
			log.Fatal("%s", err)
		}
	}
	theme, err := gui.ImportThemes(*themeName, themes)
	if err != nil {
		log.Fatal("%s: %s", err, *themeName)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal("invalid config: %s", err)
	}

	player := playerName(*name)
	ui := gui.New(cfg, player, theme)

	sound := audio.New()
	sound.Muted = *mute
	if !*mute {
		if err := sound.Init(); err != nil {
			log.Warn("sound disabled: %s", err)
		}
	}
	defer sound.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("%s started a game", player)
	loop := &game.Loop{Game: g, Source: ui, Renderer: ui, Sounder: sound}
	if err := ui.Run(ctx, loop); err != nil {
		log.Fatal("failed to run application: %s", err)
	}

	fmt.Printf("%s: score %d, lines %d, level %d\n", player, g.Score, g.Lines, g.Level())
}

func playerName(name string) string {
	if name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}

	return "player"
}

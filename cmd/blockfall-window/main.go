package main

import (
	"flag"
	"os"

	"github.com/qnkhuat/blockfall/pkg/audio"
	"github.com/qnkhuat/blockfall/pkg/game"
	"github.com/qnkhuat/blockfall/pkg/log"
	"github.com/qnkhuat/blockfall/pkg/window"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	logPath := flag.String("log", "", "path to log file, stderr when empty")
	logLevel := flag.String("log-level", "info", "log level: error, warn, info, debug, trace")
	name := flag.String("name", os.Getenv("USER"), "player name")
	seed := flag.Int64("seed", 0, "piece randomizer seed, time based when 0")
	randomizer := flag.String("randomizer", "", "piece randomizer: uniform or bag")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *logPath != "" {
		f, err := log.InitLog(*logPath, "WINDOW: ")
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

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal("invalid config: %s", err)
	}

	sound := audio.New()
	sound.Muted = *mute
	if !*mute {
		if err := sound.Init(); err != nil {
			log.Warn("sound disabled: %s", err)
		}
	}
	defer sound.Close()

	if err := window.New(g, sound, *name).Run(); err != nil {
		log.Fatal("%s", err)
	}
	log.Info("final score %d, lines %d", g.Score, g.Lines)
}

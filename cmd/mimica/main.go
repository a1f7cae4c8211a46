package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/mimica-master/internal/config"
	"github.com/palemoky/mimica-master/internal/logger"
	"github.com/palemoky/mimica-master/internal/sound"
	"github.com/palemoky/mimica-master/internal/store"
	"github.com/palemoky/mimica-master/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	if cfgErr != nil {
		cfg = config.Default()
	}

	// File logging keeps the alternate screen clean
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if cfgErr != nil {
		logger.LogError("loading config failed, using defaults: %v", cfgErr)
	}

	st, err := newStore(cfg)
	if err != nil {
		logger.LogError("opening content store: %v", err)
		fmt.Fprintf(os.Stderr, "failed to open content store: %v\n", err)
		os.Exit(1)
	}

	sounds := sound.NewManager()
	if err := sounds.Init(); err != nil {
		// Sound is a nice-to-have; the game plays fine silent
		logger.LogError("sound init failed, continuing muted: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			fmt.Fprintf(os.Stderr, "crashed, see %s\n", logger.GetLogPath())
			os.Exit(1)
		}
	}()

	p := tea.NewProgram(ui.New(cfg, st, sounds), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.LogError("program exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newStore(cfg *config.Config) (store.ContentStore, error) {
	switch cfg.Storage.Backend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return store.NewRedisStore(ctx, cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.DB)
	default:
		return store.NewFileStore(cfg.Storage.File.Path)
	}
}

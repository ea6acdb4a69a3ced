// Package config reads tool settings from the environment. Root flags on the
// CLI override whatever is set here.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/lucvt/tick/internal/store"
	"github.com/lucvt/tick/internal/store/badgerstore"
	"github.com/lucvt/tick/internal/store/jsonstore"
	"github.com/lucvt/tick/internal/store/sqlitestore"
)

// Backend names accepted by TICK_STORE / --store.
const (
	StoreJSON   = "json"
	StoreBadger = "badger"
	StoreSQLite = "sqlite"
)

type Config struct {
	Dir   string `env:"TICK_DIR" env-default:"" env-description:"data directory (default: current dir)"`
	Store string `env:"TICK_STORE" env-default:"json" env-description:"storage backend: json|badger|sqlite"`
	Theme string `env:"TICK_THEME" env-default:"classic" env-description:"output theme: classic|neon|mono"`
	Debug bool   `env:"TICK_DEBUG" env-default:"false" env-description:"debug logging"`
}

// Load reads the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// Logger builds the process logger: slog text on stderr, debug level when
// TICK_DEBUG is set.
func (c Config) Logger() *slog.Logger {
	lvl := slog.LevelWarn
	if c.Debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// OpenStore builds the configured backend.
func (c Config) OpenStore(ctx context.Context, log *slog.Logger) (store.Store, error) {
	dir := c.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	switch c.Store {
	case StoreJSON:
		return jsonstore.New(dir)
	case StoreBadger:
		return badgerstore.Open(dir, log)
	case StoreSQLite:
		return sqlitestore.Open(ctx, dir)
	}
	return nil, fmt.Errorf("unknown store backend %q (want json, badger or sqlite)", c.Store)
}

// Package config loads and saves the command-line driver's persistent
// settings.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"github.com/kirsle/configdir"

	"m6502/internal/corelog"
)

type Config struct {
	General GeneralConfig `toml:"general"`
	Run     RunConfig     `toml:"run"`
}

type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

type RunConfig struct {
	LoadAddress uint16 `toml:"load_address"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		General: GeneralConfig{LogLevel: "info"},
		Run:     RunConfig{LoadAddress: 0x0600},
	}
}

var Dir = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("m6502")
	if err := configdir.MakePath(dir); err != nil {
		corelog.ModCore.Fatalf("failed to create config directory %s: %v", dir, err)
	}
	return dir
})

const filename = "config.toml"

// LoadOrDefault loads the configuration from the local config directory,
// or returns Default if none exists yet.
func LoadOrDefault() Config {
	var cfg Config
	_, err := toml.DecodeFile(filepath.Join(Dir(), filename), &cfg)
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes cfg into the local config directory.
func Save(cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(err, "encode config")
	}
	path := filepath.Join(Dir(), filename)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "write config to %s", path)
	}
	return nil
}

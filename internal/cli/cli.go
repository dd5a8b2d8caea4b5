// Package cli holds the flags and logging setup shared by the galaxy hosts.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/plus3/galaxy/galaxy"
)

// Options are the flags every host accepts.
type Options struct {
	Profile  string
	Seed     uint64
	LogLevel string
}

// Register binds the options to fs.
func (o *Options) Register(fs *flag.FlagSet) {
	fs.StringVar(&o.Profile, "profile", galaxy.Hero.Name,
		fmt.Sprintf("Presentation profile (%s).", strings.Join(galaxy.ProfileNames(), ", ")))
	fs.Uint64Var(&o.Seed, "seed", 0, "Random seed. Zero picks a fresh galaxy every run.")
	fs.StringVar(&o.LogLevel, "log-level", "info", "Log level (debug, info, warn, error).")
}

// LoopOptions translates the flags into galaxy options.
func (o *Options) LoopOptions() ([]galaxy.Option, error) {
	profile, err := galaxy.ProfileByName(o.Profile)
	if err != nil {
		return nil, fmt.Errorf("profile flag: %w", err)
	}
	opts := []galaxy.Option{galaxy.WithProfile(profile)}
	if o.Seed != 0 {
		opts = append(opts, galaxy.WithSeed(o.Seed))
	}
	return opts, nil
}

// SetupLogging installs a text logger at the configured level as both the default
// slog logger and the galaxy package logger.
func (o *Options) SetupLogging(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return nil, fmt.Errorf("log-level flag: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	galaxy.SetLogger(logger)
	return logger, nil
}

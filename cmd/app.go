// Package cmd implements the CLI application to manage a freelance dashboard.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/subcommands"
	"github.com/projectflow/projectflow"
)

// Commands is the list of all subcommands. A main package registers them on
// its commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addProjectCmd{},
	&updateProjectCmd{},
	&deleteProjectCmd{},
	&addTaskCmd{},
	&updateTaskCmd{},
	&deleteTaskCmd{},
	&addExpenseCmd{},
	&logCmd{},
	&projectsCmd{},
	&boardCmd{},
	&summaryCmd{},
	&weeklyCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "", "Path to the data folder (overrides the config file)")
var configFile = flag.String("config", "", "Path to the config file (defaults to <data>/config.toml)")
var remote = flag.Bool("remote", false, "Persist to the configured remote document service instead of local files")

// Config is the on-disk configuration, a TOML file next to the data.
type Config struct {
	Currency string       `toml:"currency"`
	Data     string       `toml:"data"`
	Remote   RemoteConfig `toml:"remote"`
}

// RemoteConfig holds the coordinates of the hosted document service.
type RemoteConfig struct {
	Endpoint string `toml:"endpoint"`
	Project  string `toml:"project"`
	Database string `toml:"database"`
	Key      string `toml:"key"`
}

// DefaultDataDir is used when neither the flag nor the config names one.
const DefaultDataDir = ".projectflow"

// LoadConfig reads the TOML config file, returning defaults when the file
// does not exist.
func LoadConfig() (Config, error) {
	c := Config{Currency: "USD", Data: DefaultDataDir}

	path := *configFile
	if path == "" {
		path = filepath.Join(resolveDataDir(c), "config.toml")
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	return c, nil
}

// resolveDataDir applies the flag over the configured folder.
func resolveDataDir(c Config) string {
	if *dataDir != "" {
		return *dataDir
	}
	if c.Data != "" {
		return c.Data
	}
	return DefaultDataDir
}

// OpenStore is the central function to open the dashboard store: the remote
// document service when -remote is set and configured, local JSONL files
// otherwise.
func OpenStore(ctx context.Context) (*projectflow.Store, error) {
	c, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	var strategy projectflow.Strategy
	if *remote {
		if c.Remote.Endpoint == "" {
			return nil, fmt.Errorf("no remote endpoint configured in %q", filepath.Join(resolveDataDir(c), "config.toml"))
		}
		strategy = projectflow.NewDocStore(c.Remote.Endpoint, c.Remote.Project, c.Remote.Database, c.Remote.Key)
	} else {
		strategy, err = projectflow.NewFileStrategy(resolveDataDir(c))
		if err != nil {
			return nil, err
		}
	}
	return projectflow.NewStore(ctx, strategy)
}

// Currency returns the configured display currency.
func Currency() string {
	c, err := LoadConfig()
	if err != nil || c.Currency == "" {
		return "USD"
	}
	return c.Currency
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/minaorangina/uno"
	"github.com/minaorangina/uno/rules"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultFile  = "uno.json"
	DefaultGames = 1
	envPrefix    = "UNO"
)

type PlayerConf struct {
	Name     string `mapstructure:"name"`
	Strategy string `mapstructure:"strategy"`
}

type GameOptionsConf struct {
	// PauseDuration is in milliseconds
	PauseDuration int  `mapstructure:"pause_duration"`
	Verbose       bool `mapstructure:"verbose"`
}

// Simulation is the contents of a simulation file
type Simulation struct {
	Players      []PlayerConf    `mapstructure:"players"`
	Threads      int             `mapstructure:"threads"`
	Games        int             `mapstructure:"games"`
	Seed         uint64          `mapstructure:"seed"`
	PlusStacking string          `mapstructure:"plus_stacking"`
	GameOptions  GameOptionsConf `mapstructure:"game_options"`
}

// flagKeys maps configuration keys to the command line flags that override them
var flagKeys = map[string]string{
	"threads":                     "threads",
	"games":                       "games",
	"seed":                        "seed",
	"plus_stacking":               "plus-stacking",
	"game_options.pause_duration": "pause",
	"game_options.verbose":        "verbose",
}

// AddFlags registers the flags LoadSimulation knows how to bind
func AddFlags(flags *pflag.FlagSet) {
	flags.IntP("threads", "t", uno.DefaultThreads, "number of worker threads")
	flags.IntP("games", "g", DefaultGames, "number of games to play")
	flags.Uint64("seed", 0, "seed for a reproducible run, 0 for a random one")
	flags.String("plus-stacking", rules.Conservative.String(), "plus stacking mode: conservative, banned or liberal")
	flags.IntP("pause", "p", 0, "milliseconds to pause between turns")
	flags.BoolP("verbose", "v", false, "log every turn")
}

// LoadSimulation reads the simulation file at path.
// A missing file is not an error: the defaults are used instead.
// Values come from, highest first: flags that were set, UNO_ environment
// variables, the file, then the defaults.
func LoadSimulation(path string, flags *pflag.FlagSet) (*Simulation, error) {
	v := viper.New()
	v.SetDefault("players", []PlayerConf{})
	v.SetDefault("threads", uno.DefaultThreads)
	v.SetDefault("games", DefaultGames)
	v.SetDefault("seed", 0)
	v.SetDefault("plus_stacking", rules.Conservative.String())
	v.SetDefault("game_options.pause_duration", 0)
	v.SetDefault("game_options.verbose", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	var sim Simulation
	if err := v.Unmarshal(&sim); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &sim, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

// Options converts the file's settings into run options
func (s *Simulation) Options(logger *log.Logger) uno.Options {
	return uno.Options{
		Threads:   s.Threads,
		Verbose:   s.GameOptions.Verbose,
		Seed:      s.Seed,
		TurnPause: time.Duration(s.GameOptions.PauseDuration) * time.Millisecond,
		Logger:    logger,
	}
}

// NewGameMaster builds a GameMaster for the configured roster and rules
func (s *Simulation) NewGameMaster(logger *log.Logger) (*uno.GameMaster, error) {
	stacking, err := rules.ParsePlusStacking(s.PlusStacking)
	if err != nil {
		return nil, err
	}

	b := uno.NewBuilder().
		WithRules(rules.Rules{PlusStacking: stacking}).
		WithOptions(s.Options(logger))
	for _, p := range s.Players {
		b.AddPlayer(p.Name, p.Strategy)
	}
	return b.Build()
}

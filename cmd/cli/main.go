package main

import (
	"fmt"
	"os"
	"time"

	"github.com/minaorangina/uno/config"
	"github.com/minaorangina/uno/display"
	"github.com/minaorangina/uno/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "uno",
	Short: "uno simulates games of Uno between computer players",
	Long: `uno plays many independent games of Uno between the players listed in a
simulation file and reports how often each of them won.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := config.LoadSimulation(configFile, cmd.Flags())
		if err != nil {
			return err
		}

		logger := logging.New(cmd.ErrOrStderr(), "uno", runLogLevel(cmd.Flags(), sim.GameOptions.Verbose))
		logger.Debug("loaded simulation", "file", configFile, "players", len(sim.Players))

		gm, err := sim.NewGameMaster(logger)
		if err != nil {
			return fmt.Errorf("%s: %w", configFile, err)
		}

		start := time.Now()
		board, err := gm.Run(sim.Games)
		if err != nil {
			return err
		}

		p := display.NewPrinter(cmd.OutOrStdout())
		p.Results(board)
		p.Elapsed(time.Since(start))
		return nil
	},
}

// runLogLevel is --log-level, lowered to debug for verbose runs unless
// the level was given explicitly
func runLogLevel(flags *pflag.FlagSet, verbose bool) string {
	if verbose && !flags.Changed("log-level") {
		return "debug"
	}
	level, _ := flags.GetString("log-level")
	return level
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "file", "f", config.DefaultFile, "simulation file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	config.AddFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

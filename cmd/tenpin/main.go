package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/tenpin/internal/app"
	"github.com/bft-labs/tenpin/internal/cliconfig"
	"github.com/bft-labs/tenpin/internal/domain"
	"github.com/bft-labs/tenpin/internal/render"
	"github.com/bft-labs/tenpin/internal/sheet"
	"github.com/bft-labs/tenpin/internal/watch"
	"github.com/bft-labs/tenpin/pkg/bowling"
	"github.com/bft-labs/tenpin/pkg/log"
)

const longHelp = `Score ten-pin bowling games.

Rolls are given as pin counts, either as arguments or comma separated.
Each frame is printed with the bonus rolls it carries, followed by the
per-frame scores, the running total and the final score.

With no rolls and no --file, the demo game from the configuration is scored.
Configuration is read from $HOME/.tenpin/config.toml, then TENPIN_*
environment variables, then flags.`

var exampleUsage = strings.TrimSpace(`
  tenpin 10 10 10 10 10 10 10 10 10 10 10 10
  tenpin 9,1,2,3 --verify
  tenpin --file games.toml --format json
  tenpin watch --file games.toml
`)

// errMalformed marks a run in which at least one game could not be scored.
var errMalformed = errors.New("malformed games")

// getVersion prefers the module version stamped by the build and falls back
// to the scoring library version for source builds.
func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return bowling.Version + "-dev"
}

// cli holds state shared by the commands.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  log.Logger
}

// loadConfig layers file and environment config under explicitly set flags.
func (c *cli) loadConfig(cmd *cobra.Command) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	} else if c.cfgPath != "" {
		return fmt.Errorf("load config: %s not found", c.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.logger = cliconfig.Logger(c.cfg)
	c.logger.Debug("configuration", log.Any("config", c.cfg), log.String("path", cfgFile))
	return nil
}

// games returns the games selected by arguments, --file or the demo config.
func (c *cli) games(args []string) ([]domain.Game, error) {
	if len(args) > 0 {
		rolls, err := cliconfig.ParseRolls(args)
		if err != nil {
			return nil, err
		}
		return []domain.Game{{Name: "game", Rolls: rolls}}, nil
	}
	if c.cfg.File != "" {
		s, err := sheet.Load(c.cfg.File)
		if err != nil {
			return nil, fmt.Errorf("load score sheet: %w", err)
		}
		return s.Games, nil
	}
	return []domain.Game{{Name: "demo", Rolls: c.cfg.DemoRolls}}, nil
}

func (c *cli) runner() *app.Runner {
	return app.NewRunner(app.WithLogger(c.logger), app.WithVerify(c.cfg.Verify))
}

func (c *cli) scoreCmd(cmd *cobra.Command, args []string) error {
	games, err := c.games(args)
	if err != nil {
		return err
	}

	printer, err := render.New(c.cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	results := c.runner().RunAll(cmd.Context(), games)
	failed, err := render.Results(printer, results)
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d games", errMalformed, failed, len(games))
	}
	return nil
}

func (c *cli) watchCmd(cmd *cobra.Command, _ []string) error {
	if c.cfg.File == "" {
		return fmt.Errorf("%w: watch needs --file", domain.ErrInvalidConfig)
	}

	printer, err := render.New(c.cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	runner := c.runner()

	w := watch.New(c.cfg.File, func(s sheet.Sheet) {
		results := runner.RunAll(cmd.Context(), s.Games)
		failed, err := render.Results(printer, results)
		if err != nil {
			c.logger.Error("write results", log.Err(err))
			return
		}
		if failed > 0 {
			c.logger.Warn("score sheet has malformed games", log.Int("failed", failed), log.Int("games", len(s.Games)))
		}
	},
		watch.WithDebounce(c.cfg.Debounce),
		watch.WithLogger(c.logger),
	)
	return w.Run(cmd.Context())
}

func newRootCmd() *cobra.Command {
	c := &cli{
		cfg:    cliconfig.DefaultConfig(),
		logger: log.New(os.Stderr, zerolog.WarnLevel),
	}

	root := &cobra.Command{
		Use:           "tenpin [rolls...]",
		Short:         "Score ten-pin bowling games",
		Long:          longHelp,
		Example:       exampleUsage,
		Args:          cobra.ArbitraryArgs,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig(cmd)
		},
		RunE: c.scoreCmd,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-score a score sheet whenever it changes",
		Args:  cobra.NoArgs,
		RunE:  c.watchCmd,
	}
	watchCmd.Flags().DurationVar(&c.cfg.Debounce, "debounce", c.cfg.Debounce, "quiet period after a change before re-scoring")
	root.AddCommand(watchCmd)

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.tenpin/config.toml)")
	flags.StringVarP(&c.cfg.File, "file", "f", c.cfg.File, "TOML score sheet listing [[game]] entries")
	flags.StringVar(&c.cfg.Format, "format", c.cfg.Format, "output format: text or json")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&c.cfg.Verify, "verify", c.cfg.Verify, "cross-check every game against the recursive segmenter")
	flags.IntSliceVar(&c.cfg.DemoRolls, "demo", c.cfg.DemoRolls, "rolls scored when no game is given")
	if err := flags.MarkHidden("demo"); err != nil {
		c.logger.Info("failed to hide demo flag", log.Err(err))
	}

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		log.New(os.Stderr, zerolog.InfoLevel).Error("tenpin", log.Err(err))
		stop()
		os.Exit(1)
	}
}

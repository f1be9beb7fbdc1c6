package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"emojicatalog/catalog"
	"emojicatalog/config"
	"emojicatalog/logging"
	"emojicatalog/watch"
)

// CLI flags
var (
	configFlag   string
	logLevelFlag string
	inputFlag    string
	outputFlag   string
	compressFlag []string
	watchFlag    bool
)

// rootCmd generates the catalog page.
var rootCmd = &cobra.Command{
	Use:   "emojicatalog",
	Short: "Generate a static emoji catalog page",
	Long: `emojicatalog renders a JSON list of emoji metadata into one self-contained
HTML page with color, black and system-font galleries. Clicking an emoji
copies its codepoint; checkboxes switch galleries, the OpenMoji font face
and the background.

Configuration is read from --config, else $XDG_CONFIG_HOME/emojicatalog/config.toml,
else ~/.config/emojicatalog/config.toml. Flags override the file.

Examples:
  emojicatalog --input data/openmoji.json --output index.html
  emojicatalog -c catalog.yaml --compress gzip,zstd
  emojicatalog --watch
  emojicatalog check index.html
  echo '{"toggle":"black","on":true}' | emojicatalog simulate`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGenerate,
	Args:              cobra.NoArgs,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (default from "+logging.LevelEnv+", else info)")
	rootCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Emoji JSON list (.json, .json.gz, .json.zst)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output HTML file")
	rootCmd.Flags().StringSliceVar(&compressFlag, "compress", nil, "Also write precompressed copies: gzip, zstd")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Regenerate when the input or config file changes")

	rootCmd.AddCommand(checkCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("emojicatalog failed")
		os.Exit(1)
	}
}

// setup initializes logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	logging.Init(logLevelFlag)
	return nil
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	switch {
	case errors.Is(err, config.ErrNoConfig):
		log.Debug().Msg(err.Error())
	case err != nil:
		return nil, err
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = inputFlag
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFlag
	}
	if cmd.Flags().Changed("compress") {
		cfg.Compress = compressFlag
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runGenerate is the main execution logic called by Cobra.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, genErr := catalog.Generate(cfg)
	if !watchFlag {
		return genErr
	}
	if genErr != nil {
		log.Error().Err(genErr).Msg("initial build failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := []string{cfg.Input}
	if src := cfg.Source(); src != "" {
		paths = append(paths, src)
	}
	return watch.Run(ctx, paths, time.Duration(cfg.Watch.DebounceMs)*time.Millisecond, func() error {
		next, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		_, err = catalog.Generate(next)
		return err
	})
}

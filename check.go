package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"emojicatalog/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Verify the gallery structure of a generated page",
	Long: `check parses a generated catalog page and verifies that all three galleries
are present, only the color gallery is visible and every gallery carries the
same codepoints in the same order. The file defaults to the configured output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path = cfg.Output
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	summary, err := catalog.Inspect(f)
	if err != nil {
		return err
	}
	for _, sec := range summary.Sections {
		log.Info().
			Str("gallery", sec.ID).
			Bool("hidden", sec.Hidden).
			Int("tiles", len(sec.Payloads)).
			Msg("section")
	}
	if err := summary.Check(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Info().Str("path", path).Str("title", summary.Title).Msg("catalog ok")
	return nil
}

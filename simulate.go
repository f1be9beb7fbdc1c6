package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"emojicatalog/display"
	"emojicatalog/events"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay page interactions and print the resulting views",
	Long: `simulate reads newline-delimited JSON events from stdin, applies them to the
page controller and prints one JSON result per event. Events are either
{"toggle":"system|font|black|mode","on":true|false} or {"click":"<hexcode>"}.
Copied payloads are reported in the result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simulate(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// writerClipboard reports copied payloads on w.
type writerClipboard struct {
	w io.Writer
}

func (c writerClipboard) WriteText(text string) error {
	_, err := fmt.Fprintf(c.w, "copied %s\n", text)
	return err
}

func simulate(in io.Reader, out io.Writer) error {
	ctrl := display.NewController(writerClipboard{w: os.Stderr})
	ch := make(chan events.Event, 16)
	go events.Read(in, ch)

	enc := json.NewEncoder(out)
	if err := enc.Encode(events.Result{View: ctrl.View()}); err != nil {
		return err
	}
	for e := range ch {
		if err := enc.Encode(events.Apply(ctrl, e)); err != nil {
			return err
		}
	}
	return nil
}

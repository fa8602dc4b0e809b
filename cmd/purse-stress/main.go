// Command purse-stress concatenates onto a shared list from many
// goroutines at once and verifies that every result is intact.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	var verbose bool

	cmd := &cobra.Command{
		Use:          "purse-stress",
		Short:        "Concurrently concatenate onto shared lists and verify the results",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cfg.validate()
			if err != nil {
				return fmt.Errorf("configuration: %w", err)
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			r, err := run(cmd.Context(), logger, cfg)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), cfg.Format, r)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Workers, "workers", "w", 8, "number of goroutines concatenating per round")
	flags.IntVarP(&cfg.Rounds, "rounds", "r", 100, "number of rounds to run")
	flags.IntVar(&cfg.BaseLen, "base-len", 64, "length of the shared list")
	flags.IntVar(&cfg.RightLen, "right-len", 8, "length of each worker's own list")
	flags.StringVarP(&cfg.Format, "format", "f", "yaml", "report format, yaml or json")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every round")

	return cmd
}

func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err := enc.Encode(r)
		if err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil

	default:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		err := enc.Encode(r)
		if err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return nil
	}
}

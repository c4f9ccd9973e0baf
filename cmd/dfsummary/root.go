package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/leengari/dfsummary/internal/config"
	"github.com/leengari/dfsummary/internal/logging"
	"github.com/leengari/dfsummary/internal/storage"
	"github.com/leengari/dfsummary/internal/summary"
)

func newRootCmd() (*cobra.Command, error) {
	var configFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "dfsummary [flags] PATH...",
		Short: "Print the shape, first rows and column types of tabular datasets",
		Long: `dfsummary loads each PATH and prints its shape, a preview of the first
rows and the type of every column.

PATH may be a .csv, .tsv or .json file, a table directory (meta.json with
columns plus data.json) or a database directory holding table directories.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}

			logger, closeFn := logging.SetupLogger(logging.Options{
				Level:  level,
				SeqURL: cfg.SeqURL,
				Output: cmd.ErrOrStderr(),
			})
			defer closeFn()

			logger = logger.With(slog.String("run_id", uuid.NewString()))

			return run(cmd, logger, args, cfg.Rows)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default ./dfsummary.yaml or ~/.config/dfsummary/dfsummary.yaml)")
	flags.IntP("rows", "n", 5, "number of rows to preview (negative drops rows from the end)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("seq-url", "", "Seq server URL for structured logs (disabled when empty)")

	if err := bindFlags(v, flags, map[string]string{
		"rows":      "rows",
		"log_level": "log-level",
		"seq_url":   "seq-url",
	}); err != nil {
		return nil, err
	}

	return cmd, nil
}

// bindFlags binds each config key to the named flag
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag --%s to %s: %w", name, key, err)
		}
	}
	return nil
}

func run(cmd *cobra.Command, logger *slog.Logger, paths []string, rows int) error {
	out := cmd.OutOrStdout()

	var sets []*storage.Dataset
	for _, path := range paths {
		loaded, err := storage.Open(path, logger)
		if err != nil {
			logger.Error("failed to load dataset", "path", path, "error", err)
			return err
		}
		sets = append(sets, loaded...)
	}

	multiple := len(sets) > 1
	for i, ds := range sets {
		if multiple {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", label(ds))
		}

		if err := summary.Fprint(out, ds.Frame, rows); err != nil {
			logger.Error("failed to print summary", "dataset", ds.Name, "error", err)
			return err
		}
		logger.Debug("summary printed", "dataset", ds.Name, "rows", rows)
	}

	return nil
}

// label names a dataset by its path, or by table name for directory tables
func label(ds *storage.Dataset) string {
	if filepath.Base(ds.Path) == ds.Name || filepath.Ext(ds.Path) != "" {
		return ds.Path
	}
	return fmt.Sprintf("%s (%s)", ds.Path, ds.Name)
}

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gisforge/terracell/pkg/cell"
	"github.com/gisforge/terracell/pkg/config"
	"github.com/gisforge/terracell/pkg/errors"
	"github.com/gisforge/terracell/pkg/history"
	"github.com/gisforge/terracell/pkg/logger"
	"github.com/gisforge/terracell/pkg/raster"
)

var version = "0.1.0"

func main() {
	var configFile string
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "terracell",
		Short: "Terracell - typed raster cell value toolkit",
		Long: `Terracell inspects, converts and annotates raw raster cell files
stored in one of three fixed-width encodings (int32, float32, float64),
preserving each encoding's "no data" sentinel throughout.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return err
			}
			return logger.Init(logger.Config{
				Level:       cfg.Logging.Level,
				Encoding:    cfg.Logging.Encoding,
				Development: cfg.Logging.Development,
			})
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to YAML config file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Terracell v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newInfoCmd(&cfg))
	root.AddCommand(newConvertCmd(&cfg))
	root.AddCommand(newHistoryCmd(&cfg))

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
	logger.Sync() //nolint:errcheck
}

func newInfoCmd(cfg **config.Config) *cobra.Command {
	var typeName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info <cellfile>",
		Short: "Summarize a raw cell file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveType(typeName, *cfg)
			if err != nil {
				return err
			}

			buf, err := raster.ReadFile(args[0], t)
			if err != nil {
				return err
			}

			st := raster.Collect(buf)
			if asJSON {
				out, err := gojson.MarshalIndent(st, "", "  ")
				if err != nil {
					return errors.Wrap(err, errors.ErrorTypeInternal, "failed to encode stats")
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("type:  %s\n", st.Type)
			fmt.Printf("cells: %d\n", st.Cells)
			fmt.Printf("nulls: %d\n", st.Nulls)
			if st.Valid > 0 {
				fmt.Printf("min:   %g\n", st.Min)
				fmt.Printf("max:   %g\n", st.Max)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "cell encoding of the file (int32, float32, float64)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	return cmd
}

func newConvertCmd(cfg **config.Config) *cobra.Command {
	var fromName, toName string
	var withHistory bool

	cmd := &cobra.Command{
		Use:   "convert <infile> <outfile>",
		Short: "Re-encode a raw cell file",
		Long: `Convert re-encodes every cell of a raw cell file. Narrowing
conversions truncate (no rounding) and null cells stay null in the
destination encoding.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := resolveType(fromName, *cfg)
			if err != nil {
				return err
			}
			to, err := resolveType(toName, *cfg)
			if err != nil {
				return err
			}

			src, err := raster.ReadFile(args[0], from)
			if err != nil {
				return err
			}

			dst := raster.Convert(src, to)
			if err := raster.WriteFile(args[1], dst); err != nil {
				return err
			}
			logger.Info("converted cell file",
				zap.String("in", args[0]),
				zap.String("out", args[1]),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
				zap.Int("cells", src.Len()))

			if withHistory {
				rec := history.New(args[1], (*cfg).History.Dir, "raster")
				if err := rec.AppendCommand(strings.Join(os.Args, " ")); err != nil {
					logger.Warn("history edit log problem", zap.Error(err))
				}
				if err := rec.WriteFile(args[1] + ".hist"); err != nil {
					// A history write failure warns; the converted
					// data still stands.
					logger.Warn("unable to write history record", zap.Error(err))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fromName, "from", "", "source cell encoding")
	cmd.Flags().StringVar(&toName, "to", "", "destination cell encoding")
	cmd.Flags().BoolVar(&withHistory, "history", true, "write a history record next to the output")
	return cmd
}

func newHistoryCmd(cfg **config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and edit map history records",
	}

	var asJSON bool
	show := &cobra.Command{
		Use:   "show <histfile>",
		Short: "Print a history record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := history.ReadFile(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				out, err := gojson.MarshalIndent(rec, "", "  ")
				if err != nil {
					return errors.Wrap(err, errors.ErrorTypeInternal, "failed to encode record")
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("map id:      %s\n", rec.MapID)
			fmt.Printf("title:       %s\n", rec.Title)
			fmt.Printf("mapset:      %s\n", rec.Mapset)
			fmt.Printf("creator:     %s\n", rec.Creator)
			fmt.Printf("map type:    %s\n", rec.MapType)
			fmt.Printf("data source: %s\n", rec.DataSource1)
			fmt.Printf("             %s\n", rec.DataSource2)
			fmt.Printf("keywords:    %s\n", rec.Keywords)
			for _, line := range rec.Edits {
				fmt.Printf("  | %s\n", line)
			}
			return nil
		},
	}
	show.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	cmd.AddCommand(show)

	var name, mapset, mapType string
	initCmd := &cobra.Command{
		Use:   "init <histfile>",
		Short: "Create a fresh history record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mapset == "" {
				mapset = (*cfg).History.Dir
			}
			rec := history.New(name, mapset, mapType)
			return rec.WriteFile(args[0])
		},
	}
	initCmd.Flags().StringVar(&name, "name", "", "map name")
	initCmd.Flags().StringVar(&mapset, "mapset", "", "owning mapset")
	initCmd.Flags().StringVar(&mapType, "maptype", "raster", "map type label")
	cmd.AddCommand(initCmd)

	logCmd := &cobra.Command{
		Use:   "log <histfile> -- <command...>",
		Short: "Append a command line to a record's edit log",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := history.ReadFile(args[0])
			if err != nil {
				return err
			}

			err = rec.AppendCommand(strings.Join(args[1:], " "))
			switch {
			case err == nil:
			case errors.IsType(err, errors.ErrorTypeData):
				logger.Warn("history edit log full", zap.Error(err))
			default:
				return err
			}

			return rec.WriteFile(args[0])
		},
	}
	cmd.AddCommand(logCmd)

	return cmd
}

// resolveType picks the explicit flag value when given, the configured
// default otherwise.
func resolveType(name string, cfg *config.Config) (cell.Type, error) {
	if name == "" {
		name = cfg.Raster.CellType
	}
	return cell.ParseType(name)
}

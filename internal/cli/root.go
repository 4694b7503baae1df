// Package cli implements the tiempo CLI commands.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hrygo/tiempo/internal/observability"
	"github.com/hrygo/tiempo/internal/profile"
	"github.com/hrygo/tiempo/plugin/hora"
	"github.com/hrygo/tiempo/plugin/hora/corpus"
	"github.com/hrygo/tiempo/store"
	"github.com/hrygo/tiempo/store/db"
)

var (
	v          = profile.NewViper()
	prof       *profile.Profile
	formatFlag string
	version    = "dev"
)

// SetVersion records the build version reported by --version and in the profile.
func SetVersion(s string) {
	if s == "" {
		return
	}
	version = s
	RootCmd.Version = s
}

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:          "tiempo",
	Short:        "Spanish time expressions: speak, resolve, extract and generate corpora",
	Long:         "Renders clock times as spoken Spanish, resolves relative requests such as \"mañana a las nueve\" against a context timestamp, extracts timestamps from model answers and generates training corpora.",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		p, err := profile.Load(v)
		if err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return errors.Wrap(err, "invalid configuration")
		}
		p.Version = version
		prof = p

		logger := observability.NewLogger(cmd.ErrOrStderr(), p.Mode, p.SlogLevel())
		slog.SetDefault(logger)
		rc := observability.NewRunContext(logger, cmd.CommandPath())
		cmd.SetContext(observability.WithRunContext(cmd.Context(), rc))
		rc.Debug("starting",
			slog.String("version", p.Version),
			slog.String("driver", p.Driver),
			slog.Int64("seed", p.Seed))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		rc, ok := observability.FromContext(cmd.Context())
		if !ok {
			return
		}
		snap := observability.GlobalMetrics().Snapshot()
		rc.Debug("finished",
			slog.Int64(observability.LogFieldDuration, rc.DurationMs()),
			slog.Int64("requests", snap.RequestTotal),
			slog.Int64("failed", snap.RequestFailed),
			slog.Int64(observability.LogFieldDegraded, snap.Degraded))
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String(profile.KeyConfig, "", "Config file (yaml, json or toml)")
	flags.String(profile.KeyMode, "dev", "Mode: dev or prod")
	flags.String(profile.KeyLogLevel, "info", "Log level: debug, info, warn or error")
	flags.String(profile.KeyData, "", "Data directory (default: current directory)")
	flags.String(profile.KeyDriver, "sqlite", "Database driver: sqlite or postgres")
	flags.String(profile.KeyDSN, "", "Database DSN (default: <data>/tiempo_<mode>.db for sqlite)")
	flags.Int(profile.KeyDefaultHour, -1, "Hour for day requests without a time (-1 keeps the context time)")
	flags.StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
	bindFlags(flags, profile.KeyConfig, profile.KeyMode, profile.KeyLogLevel, profile.KeyData,
		profile.KeyDriver, profile.KeyDSN, profile.KeyDefaultHour)
}

// bindFlags binds flags to the viper keys of the same name. Flags set on the command line
// take precedence over TIEMPO_* variables.
func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func newService() *hora.Service {
	opts := []hora.Option{hora.WithLogger(slog.Default()), hora.WithCacheSize(256)}
	if prof != nil && prof.DefaultHour >= 0 {
		opts = append(opts, hora.WithDefaultClock(hora.ClockTime{Hour: prof.DefaultHour}))
	}
	return hora.NewService(opts...)
}

func openStore(ctx context.Context) (*store.Store, error) {
	driver, err := db.NewDBDriver(prof)
	if err != nil {
		return nil, err
	}
	s := store.New(driver, prof)
	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, errors.Wrap(err, "failed to migrate store")
	}
	return s, nil
}

func printJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// writeJSONL writes records to path, or to w when path is empty. A failed close of the file
// is reported.
func writeJSONL[T corpus.Record](w io.Writer, path string, records []T) (err error) {
	if path == "" {
		return corpus.WriteJSONL(w, records)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()
	return corpus.WriteJSONL(f, records)
}

func jsonOutput() bool {
	return formatFlag == "json"
}

func runContext(cmd *cobra.Command) *observability.RunContext {
	if rc, ok := observability.FromContext(cmd.Context()); ok {
		return rc
	}
	return observability.NewRunContext(slog.Default(), cmd.CommandPath())
}

package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hrygo/tiempo/internal/observability"
	"github.com/hrygo/tiempo/internal/profile"
	"github.com/hrygo/tiempo/plugin/hora"
	"github.com/hrygo/tiempo/plugin/hora/corpus"
	"github.com/hrygo/tiempo/store"
)

var (
	generateOut   string
	generateStore bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate training or contextual corpora as JSON lines",
	Long:  "Writes the corpus to --out, to stdout when neither --out nor --store is given, and with --store into a new dataset of the configured database.",
}

var generateTrainingCmd = &cobra.Command{
	Use:   "training",
	Short: "Instruction/answer pairs of spoken times and HH:MM",
	Example: `  tiempo generate training --out datos_horas.jsonl
  TIEMPO_STEP_MINUTES=1 tiempo generate training --store`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		records, err := newGenerator().Training(ctx)
		if err != nil {
			return err
		}
		return emit(cmd, records, func(ctx context.Context, s *store.Store) (*store.Dataset, error) {
			rows := make([]*store.TrainingRecord, len(records))
			for i, r := range records {
				rows[i] = &store.TrainingRecord{Instruction: r.Instruction, Output: r.Output}
			}
			return s.SaveTrainingRecords(ctx, prof.Seed, rows)
		})
	},
}

var generateContextualCmd = &cobra.Command{
	Use:   "contextual",
	Short: "Requests with a context timestamp and the resolved pickup time",
	Example: `  tiempo generate contextual --contextual-size 12000 --out datos_horas_tlp.jsonl`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		records, err := newGenerator().Contextual(ctx, prof.ContextualSize)
		if err != nil {
			return err
		}
		return emit(cmd, records, func(ctx context.Context, s *store.Store) (*store.Dataset, error) {
			rows := make([]*store.ContextRecord, len(records))
			for i, r := range records {
				rows[i] = &store.ContextRecord{
					Peticion:       r.Peticion,
					ContextoBase:   r.ContextoBase.String(),
					SalidaAbsoluta: r.SalidaAbsoluta.String(),
				}
			}
			return s.SaveContextRecords(ctx, prof.Seed, rows)
		})
	},
}

func init() {
	flags := generateCmd.PersistentFlags()
	flags.Int64(profile.KeySeed, 42, "Random seed; the same seed yields the same corpus")
	flags.Int(profile.KeyIterations, 4, "Passes over the day for training corpora")
	flags.Int(profile.KeyStepMinutes, 5, "Minutes between rendered clock times")
	flags.Int(profile.KeyWorkers, 0, "Concurrent workers (default: one per CPU)")
	flags.Int(profile.KeyContextualSize, 12000, "Number of contextual records")
	flags.StringVarP(&generateOut, "out", "o", "", "Output file")
	flags.BoolVar(&generateStore, "store", false, "Save the corpus as a dataset in the database")
	bindFlags(flags, profile.KeySeed, profile.KeyIterations, profile.KeyStepMinutes,
		profile.KeyWorkers, profile.KeyContextualSize)

	generateCmd.AddCommand(generateTrainingCmd, generateContextualCmd)
	RootCmd.AddCommand(generateCmd)
}

func newGenerator() *corpus.Generator {
	g := corpus.NewGenerator(corpus.Options{
		Seed:        prof.Seed,
		Iterations:  prof.Iterations,
		StepMinutes: prof.StepMinutes,
		Workers:     prof.Workers,
	})
	if prof.DefaultHour >= 0 {
		g.WithResolver(hora.Resolver{DefaultClock: &hora.ClockTime{Hour: prof.DefaultHour}})
	}
	return g
}

// emit writes records to the output file or stdout and, with --store, saves them.
func emit[T corpus.Record](cmd *cobra.Command, records []T, save func(context.Context, *store.Store) (*store.Dataset, error)) error {
	ctx := cmd.Context()
	rc := runContext(cmd)

	if generateOut != "" || !generateStore {
		if err := writeJSONL(cmd.OutOrStdout(), generateOut, records); err != nil {
			return err
		}
		if generateOut != "" {
			rc.Info("wrote corpus",
				slog.String("file", generateOut),
				slog.Int(observability.LogFieldRecords, len(records)))
		}
	}

	if generateStore {
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()
		dataset, err := save(ctx, s)
		if err != nil {
			return err
		}
		rc.Info("stored corpus",
			slog.String("dataset", dataset.ID),
			slog.String("kind", string(dataset.Kind)),
			slog.Int(observability.LogFieldRecords, dataset.RecordCount))
	}
	return nil
}

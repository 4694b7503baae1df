package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hrygo/tiempo/plugin/hora"
	"github.com/hrygo/tiempo/plugin/hora/corpus"
	"github.com/hrygo/tiempo/store"
)

var (
	datasetsKind string
	datasetsOut  string
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage corpora saved with generate --store",
}

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored datasets, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		find := &store.FindDataset{}
		if datasetsKind != "" {
			kind := store.DatasetKind(datasetsKind)
			find.Kind = &kind
		}
		list, err := s.ListDatasets(ctx, find)
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), list)
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tKIND\tSEED\tRECORDS\tCREATED")
		for _, ds := range list {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", ds.ID, ds.Kind, ds.Seed, ds.RecordCount,
				time.Unix(ds.CreatedTs, 0).Format(hora.TimestampLayout))
		}
		return tw.Flush()
	},
}

var datasetsExportCmd = &cobra.Command{
	Use:   "export ID",
	Short: "Write a stored dataset as JSON lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		dataset, err := s.GetDataset(ctx, &store.FindDataset{ID: &args[0]})
		if err != nil {
			return err
		}
		if dataset == nil {
			return errors.Errorf("dataset %s not found", args[0])
		}

		find := &store.FindRecord{DatasetID: dataset.ID}
		switch dataset.Kind {
		case store.DatasetTraining:
			rows, err := s.ListTrainingRecords(ctx, find)
			if err != nil {
				return err
			}
			records := make([]corpus.TrainingRecord, len(rows))
			for i, r := range rows {
				records[i] = corpus.TrainingRecord{Instruction: r.Instruction, Output: r.Output}
			}
			return writeJSONL(cmd.OutOrStdout(), datasetsOut, records)
		default:
			rows, err := s.ListContextRecords(ctx, find)
			if err != nil {
				return err
			}
			records := make([]corpus.ContextRecord, len(rows))
			for i, r := range rows {
				base, err := hora.ParseTimestamp(r.ContextoBase)
				if err != nil {
					return errors.Wrapf(err, "record %d", r.Seq)
				}
				salida, err := hora.ParseTimestamp(r.SalidaAbsoluta)
				if err != nil {
					return errors.Wrapf(err, "record %d", r.Seq)
				}
				records[i] = corpus.ContextRecord{Peticion: r.Peticion, ContextoBase: base, SalidaAbsoluta: salida}
			}
			return writeJSONL(cmd.OutOrStdout(), datasetsOut, records)
		}
	},
}

var datasetsRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a stored dataset and its records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.DeleteDataset(ctx, &store.DeleteDataset{ID: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	datasetsListCmd.Flags().StringVar(&datasetsKind, "kind", "", "Filter by kind: training or contextual")
	datasetsExportCmd.Flags().StringVarP(&datasetsOut, "out", "o", "", "Output file (default: stdout)")
	datasetsCmd.AddCommand(datasetsListCmd, datasetsExportCmd, datasetsRmCmd)
	RootCmd.AddCommand(datasetsCmd)
}

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrygo/tiempo/plugin/hora"
)

var resolveContext string

var resolveCmd = &cobra.Command{
	Use:   "resolve <peticion>",
	Short: "Resolve a relative request against a context timestamp",
	Example: `  tiempo resolve --context "2025-01-01 10:00" "Quiero un taxi dentro de una hora"
  tiempo resolve --context "2025-01-01 22:00" "Necesito un taxi para esta noche" -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contexto := resolveContext
		if contexto == "" {
			contexto = time.Now().Format(hora.TimestampLayout)
		}

		p, err := newService().Predict(cmd.Context(), strings.Join(args, " "), contexto)
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), p)
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.SalidaAbsoluta)
		if p.Degraded {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: request not understood, returned the context time\n")
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveContext, "context", "", "Context timestamp \"YYYY-MM-DD HH:MM\" (default: now)")
	RootCmd.AddCommand(resolveCmd)
}

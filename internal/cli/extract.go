package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract a canonical timestamp from free text",
	Long:  "Prints the first \"YYYY-MM-DD HH:MM\" or \"HH:MM\" found in the text, or the time spelled as \"<h> horas y <m> minutos\". Reads stdin when no text is given. Exits 1 when nothing is found.",
	Example: `  tiempo extract "salida_absoluta: 2025-01-08 10:00"
  echo "a las 07:05" | tiempo extract`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if len(args) == 0 {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "failed to read stdin")
			}
			text = string(b)
		}

		e, err := newService().ExtractAnswer(cmd.Context(), text)
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), e)
		}
		fmt.Fprintln(cmd.OutOrStdout(), e.String())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(extractCmd)
}

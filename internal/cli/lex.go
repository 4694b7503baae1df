package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hrygo/tiempo/plugin/hora"
)

var lexClock bool

var lexCmd = &cobra.Command{
	Use:   "lex N",
	Short: "Print the Spanish words for a number from 0 to 59",
	Example: `  tiempo lex 45
  tiempo lex 1 --clock`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a number: %q", args[0])
		}
		mode := hora.General
		if lexClock {
			mode = hora.ClockHour
		}
		words, err := hora.Lexicalize(n, mode)
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), map[string]any{"n": n, "words": words})
		}
		fmt.Fprintln(cmd.OutOrStdout(), words)
		return nil
	},
}

func init() {
	lexCmd.Flags().BoolVar(&lexClock, "clock", false, "Clock-hour mode: 0 reads \"doce\", 1 reads \"una\"")
	RootCmd.AddCommand(lexCmd)
}

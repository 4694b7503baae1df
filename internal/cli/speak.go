package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrygo/tiempo/plugin/hora"
)

var (
	speakAll  bool
	speakSeed int64
)

var speakCmd = &cobra.Command{
	Use:   "speak HH:MM",
	Short: "Render a clock time as spoken Spanish",
	Long:  "Prints one phrase per synthesis rule, the 24-hour anchor first. Day-part descriptors are picked at random unless --all lists every candidate.",
	Example: `  tiempo speak 18:30
  tiempo speak 23:45 --all
  tiempo speak 07:05 --seed 42 -f json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var pick hora.Picker
		if !speakAll {
			seed := speakSeed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			pick = rand.New(rand.NewSource(seed))
		}

		variants, err := newService().Speak(cmd.Context(), args[0], pick)
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), variants)
		}
		for _, pv := range variants {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", pv.Rule, pv.Text)
		}
		return nil
	},
}

func init() {
	speakCmd.Flags().BoolVar(&speakAll, "all", false, "List every day-part candidate")
	speakCmd.Flags().Int64Var(&speakSeed, "seed", 0, "Seed for day-part choice (default: random)")
	RootCmd.AddCommand(speakCmd)
}

package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/promptkit/internal/prompt"
	"github.com/henri123lemoine/promptkit/internal/ui"
)

var numberCmd = &cobra.Command{
	Use:   "number <prompt>",
	Short: "Step a number with the arrow keys",
	Long: `Step a number with up/down between two exclusive bounds; enter confirms.

The value starts at --min, which can never itself be confirmed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := prompt.NumberOptions{Prompt: args[0]}
		o.Increment, _ = cmd.Flags().GetInt("increment")
		o.Min, _ = cmd.Flags().GetInt("min")
		o.Max, _ = cmd.Flags().GetInt("max")
		if err := o.Validate(); err != nil {
			return errors.Wrap(err, "invalid number options")
		}

		var value int
		err := withSession(func(s *session) error {
			var err error
			value, err = prompt.Number(s.driver, s.env, o)
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var inputCmd = &cobra.Command{
	Use:   "input <prompt>",
	Short: "Type a number",
	Long: `Type a number and press enter. Invalid input is rejected with a message
and the prompt asks again. Bounds are inclusive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := prompt.InputOptions{Prompt: args[0]}
		if cmd.Flags().Changed("min") {
			v, _ := cmd.Flags().GetFloat64("min")
			o.Min = &v
		}
		if cmd.Flags().Changed("max") {
			v, _ := cmd.Flags().GetFloat64("max")
			o.Max = &v
		}
		integer, _ := cmd.Flags().GetBool("integer")
		o.AllowFloat = !integer
		if err := o.Validate(); err != nil {
			return errors.Wrap(err, "invalid input options")
		}

		var value float64
		err := withSession(func(s *session) error {
			var err error
			value, err = prompt.Input(s.driver, s.env, o)
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatNumber(value))
		return nil
	},
}

func init() {
	numberCmd.Flags().Int("increment", 1, "step applied by up/down")
	numberCmd.Flags().Int("min", 0, "exclusive lower bound and starting value")
	numberCmd.Flags().Int("max", 0, "exclusive upper bound")
	_ = numberCmd.MarkFlagRequired("max")
	rootCmd.AddCommand(numberCmd)

	inputCmd.Flags().Float64("min", 0, "inclusive lower bound")
	inputCmd.Flags().Float64("max", 0, "inclusive upper bound")
	inputCmd.Flags().Bool("integer", false, "reject numbers with a fractional part")
	rootCmd.AddCommand(inputCmd)
}

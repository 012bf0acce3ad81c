package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/promptkit/internal/prompt"
)

var multiCmd = &cobra.Command{
	Use:   "multi [options...]",
	Short: "Tick any number of options from a list",
	Long: `Tick options with space (or enter), then confirm on the confirm row.

Options are taken from the arguments, or one per line from stdin.
Prints the ticked indices (or texts with --value), one per line, in the
order they were ticked.`,
	RunE: runMulti,
}

func init() {
	multiCmd.Flags().IntSlice("caption", nil, "indices of options shown as unselectable captions")
	multiCmd.Flags().IntSlice("ticked", nil, "indices ticked initially")
	multiCmd.Flags().Int("cursor", 0, "index the cursor starts on")
	multiCmd.Flags().Int("min", 0, "minimum number of ticked options")
	multiCmd.Flags().Int("max", 0, "maximum number of ticked options (0 for no limit)")
	multiCmd.Flags().Bool("hide-confirm", false, "hide the confirm row; enter confirms")
	multiCmd.Flags().Bool("value", false, "print option texts instead of indices")
	rootCmd.AddCommand(multiCmd)
}

func runMulti(cmd *cobra.Command, args []string) error {
	options, err := stdinOptions(args)
	if err != nil {
		return err
	}

	o := prompt.MultiOptions{Options: options}
	o.Captions, _ = cmd.Flags().GetIntSlice("caption")
	o.Ticked, _ = cmd.Flags().GetIntSlice("ticked")
	o.Cursor, _ = cmd.Flags().GetInt("cursor")
	o.Min, _ = cmd.Flags().GetInt("min")
	o.Max, _ = cmd.Flags().GetInt("max")
	o.HideConfirm, _ = cmd.Flags().GetBool("hide-confirm")
	printValue, _ := cmd.Flags().GetBool("value")

	if err := o.Validate(); err != nil {
		return errors.Wrap(err, "invalid multi options")
	}

	var ticked []int
	err = withSession(func(s *session) error {
		ticked, err = prompt.Multi(s.driver, s.env, o)
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, i := range ticked {
		if printValue {
			fmt.Fprintln(out, options[i])
		} else {
			fmt.Fprintln(out, i)
		}
	}
	return nil
}

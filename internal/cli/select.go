package cli

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/promptkit/internal/debug"
	"github.com/henri123lemoine/promptkit/internal/history"
	"github.com/henri123lemoine/promptkit/internal/prompt"
)

var selectCmd = &cobra.Command{
	Use:   "select [options...]",
	Short: "Pick one option from a list",
	Long: `Pick one option from a list with the arrow keys; any other key selects.

Options are taken from the arguments, or one per line from stdin.
Prints the index of the chosen option (or its text with --value).`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().IntSlice("caption", nil, "indices of options shown as unselectable captions")
	selectCmd.Flags().Int("start", 0, "index the cursor starts on")
	selectCmd.Flags().String("filter", "", "fuzzy filter applied to the options before selecting")
	selectCmd.Flags().String("remember", "", "remember the answer under this id and start on it next time")
	selectCmd.Flags().Bool("value", false, "print the option text instead of its index")
	rootCmd.AddCommand(selectCmd)
}

// view is the list actually shown: a subset of the input options plus
// the mapping back to input indices.
type view struct {
	options  []string
	captions []int
	indices  []int
}

// optionSource implements fuzzy.Source over the selectable options.
type optionSource struct {
	options []string
	indices []int
}

func newOptionSource(options []string, captions []int) optionSource {
	set := make(map[int]bool, len(captions))
	for _, c := range captions {
		set[c] = true
	}
	src := optionSource{options: options}
	for i := range options {
		if !set[i] {
			src.indices = append(src.indices, i)
		}
	}
	return src
}

func (s optionSource) String(i int) string {
	return s.options[s.indices[i]]
}

func (s optionSource) Len() int {
	return len(s.indices)
}

// filterOptions narrows options to the fuzzy matches of pattern, best
// match first. Captions are dropped from a filtered view.
func filterOptions(options []string, captions []int, pattern string) (view, error) {
	if pattern == "" {
		indices := make([]int, len(options))
		for i := range indices {
			indices[i] = i
		}
		return view{options: options, captions: captions, indices: indices}, nil
	}

	src := newOptionSource(options, captions)
	matches := fuzzy.FindFrom(pattern, src)
	if len(matches) == 0 {
		return view{}, errors.Newf("no options match %q", pattern)
	}

	var v view
	for _, match := range matches {
		idx := src.indices[match.Index]
		v.options = append(v.options, options[idx])
		v.indices = append(v.indices, idx)
	}
	return v, nil
}

// localIndex maps an input index into the view, or -1 if it is not shown.
func (v view) localIndex(input int) int {
	return slices.Index(v.indices, input)
}

func (v view) usable(i int) bool {
	return !slices.Contains(v.captions, i)
}

func runSelect(cmd *cobra.Command, args []string) error {
	options, err := stdinOptions(args)
	if err != nil {
		return err
	}
	captions, _ := cmd.Flags().GetIntSlice("caption")
	start, _ := cmd.Flags().GetInt("start")
	pattern, _ := cmd.Flags().GetString("filter")
	remember, _ := cmd.Flags().GetString("remember")
	printValue, _ := cmd.Flags().GetBool("value")

	v, err := filterOptions(options, captions, pattern)
	if err != nil {
		return err
	}

	o := prompt.SelectOptions{Options: v.options, Captions: v.captions}
	o.Start = v.startIndex(start, cmd.Flags().Changed("start"))
	if remember != "" && !cmd.Flags().Changed("start") {
		if e, ok := history.Load(cfg.StatePath(), remember); ok {
			if i, ok := history.Resolve(e, v.options, v.usable); ok {
				o.Start = i
			}
		}
	}
	if err := o.Validate(); err != nil {
		return errors.Wrap(err, "invalid select options")
	}

	var chosen int
	err = withSession(func(s *session) error {
		chosen, err = prompt.Select(s.driver, s.env, o)
		return err
	})
	if err != nil {
		return err
	}

	if remember != "" {
		if err := history.Save(cfg.StatePath(), remember, chosen, v.options[chosen]); err != nil {
			debug.Log("remember %s: %v", remember, err)
		}
	}

	if printValue {
		fmt.Fprintln(cmd.OutOrStdout(), v.options[chosen])
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.indices[chosen])
	return nil
}

// startIndex picks where the cursor starts: the requested input index if
// it is shown, otherwise the first selectable option.
func (v view) startIndex(start int, explicit bool) int {
	if i := v.localIndex(start); i >= 0 && (explicit || v.usable(i)) {
		return i
	}
	for i := range v.options {
		if v.usable(i) {
			return i
		}
	}
	return 0
}

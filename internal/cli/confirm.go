package cli

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/promptkit/internal/config"
	"github.com/henri123lemoine/promptkit/internal/prompt"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm <question>",
	Short: "Ask a yes/no question",
	Long: `Ask a yes/no question. Type the start of an answer or use up/down, then
press enter.

Prints yes or no. Exit status is 0 for yes, 1 for no and 130 when the
prompt was interrupted with no abort answer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := confirmOptions(cmd, args[0])
		if err != nil {
			return err
		}

		var answer prompt.Answer
		err = withSession(func(s *session) error {
			var err error
			answer, err = prompt.Choice(s.driver, s.env, o)
			return err
		})
		if err != nil {
			return err
		}
		switch answer {
		case prompt.AnswerYes:
			fmt.Fprintln(cmd.OutOrStdout(), "yes")
			return nil
		case prompt.AnswerNo:
			fmt.Fprintln(cmd.OutOrStdout(), "no")
			return errAnsweredNo
		}
		return errNoAnswer
	},
}

var chooseUnitCmd = &cobra.Command{
	Use:   "choose-unit <question>",
	Short: "Choose between minutes and hours",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var answer prompt.Answer
		err := withSession(func(s *session) error {
			var err error
			answer, err = prompt.Choice(s.driver, s.env, prompt.MinuteHour(args[0]))
			return err
		})
		if err != nil {
			return err
		}
		switch answer {
		case prompt.AnswerYes:
			fmt.Fprintln(cmd.OutOrStdout(), "minute")
		case prompt.AnswerNo:
			fmt.Fprintln(cmd.OutOrStdout(), "hour")
		default:
			return errNoAnswer
		}
		return nil
	},
}

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Ask for a duration in hours and minutes",
	Long: `Ask for hours, then minutes, with the arrow keys and print the total as
a duration (for example 2h15m0s).

With --ask-unit, first choose minutes or hours, then enter a single amount.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		askUnit, _ := cmd.Flags().GetBool("ask-unit")

		var d time.Duration
		err := withSession(func(s *session) error {
			var err error
			if askUnit {
				d, err = askDurationByUnit(s)
			} else {
				d, err = askDuration(s)
			}
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

func init() {
	confirmCmd.Flags().String("yes", "Yes", "label of the positive answer")
	confirmCmd.Flags().String("no", "No", "label of the negative answer")
	confirmCmd.Flags().Bool("case-sensitive", false, "match typed text case-sensitively")
	confirmCmd.Flags().Bool("no-empty-confirm", false, "require typing or arrows before enter confirms")
	confirmCmd.Flags().Bool("default-yes", false, "start on the positive answer")
	confirmCmd.Flags().String("abort", "none", "answer when interrupted: yes, no or none")
	confirmCmd.Flags().Bool("no-shorthand", false, "do not show the (Y/N) shorthand")
	rootCmd.AddCommand(confirmCmd)

	rootCmd.AddCommand(chooseUnitCmd)

	durationCmd.Flags().Bool("ask-unit", false, "choose minutes or hours first, then enter one amount")
	rootCmd.AddCommand(durationCmd)
}

func confirmOptions(cmd *cobra.Command, question string) (prompt.ChoiceOptions, error) {
	o := prompt.YesNo(question)
	o.First, _ = cmd.Flags().GetString("yes")
	o.Second, _ = cmd.Flags().GetString("no")
	o.CaseSensitive, _ = cmd.Flags().GetBool("case-sensitive")
	noEmpty, _ := cmd.Flags().GetBool("no-empty-confirm")
	o.EmptyConfirms = !noEmpty
	o.DefaultFirst, _ = cmd.Flags().GetBool("default-yes")
	noShorthand, _ := cmd.Flags().GetBool("no-shorthand")
	o.Shorthand = !noShorthand

	abort, _ := cmd.Flags().GetString("abort")
	a, err := parseAnswer(abort)
	if err != nil {
		return o, err
	}
	o.Abort = a

	if o.First == "" || o.Second == "" {
		return o, errors.New("answer labels must not be empty")
	}
	return o, nil
}

func parseAnswer(s string) (prompt.Answer, error) {
	switch s {
	case "yes":
		return prompt.AnswerYes, nil
	case "no":
		return prompt.AnswerNo, nil
	case "none", "":
		return prompt.AnswerNone, nil
	}
	return prompt.AnswerNone, errors.WithHint(
		errors.Newf("invalid abort answer %q", s),
		"use yes, no or none",
	)
}

// durationPrompt returns the arrow-stepped entry for one duration unit.
func durationPrompt(dc config.DurationConfig, hours bool) (prompt.NumberOptions, error) {
	o := prompt.NumberOptions{Prompt: "MIN", Increment: dc.Step, Min: 0, Max: dc.MaxMinutes}
	if hours {
		o.Prompt, o.Max = "HOURS", dc.MaxHours
	}
	if err := o.Validate(); err != nil {
		return o, errors.WithHint(errors.Wrap(err, "invalid [duration] config"), "check max_hours, max_minutes and step")
	}
	return o, nil
}

func askDuration(s *session) (time.Duration, error) {
	ho, err := durationPrompt(cfg.Duration, true)
	if err != nil {
		return 0, err
	}
	mo, err := durationPrompt(cfg.Duration, false)
	if err != nil {
		return 0, err
	}

	hours, err := prompt.Number(s.driver, s.env, ho)
	if err != nil {
		return 0, err
	}
	minutes, err := prompt.Number(s.driver, s.env, mo)
	if err != nil {
		return 0, err
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

func askDurationByUnit(s *session) (time.Duration, error) {
	unit, err := prompt.Choice(s.driver, s.env, prompt.MinuteHour("Unit?"))
	if err != nil {
		return 0, err
	}
	if unit == prompt.AnswerNone {
		return 0, prompt.ErrCancelled
	}

	hours := unit == prompt.AnswerNo
	o, err := durationPrompt(cfg.Duration, hours)
	if err != nil {
		return 0, err
	}
	n, err := prompt.Number(s.driver, s.env, o)
	if err != nil {
		return 0, err
	}
	if hours {
		return time.Duration(n) * time.Hour, nil
	}
	return time.Duration(n) * time.Minute, nil
}

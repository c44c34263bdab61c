package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newQuizCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "quiz <id>",
		Short: "Grade quiz answers from a YAML list",
		Long: "Grade answers to a quiz. --answers names a YAML file holding a list of\n" +
			"strings, one per question in order (- reads stdin). Exits 1 below the\n" +
			"pass threshold.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			id := args[0]
			ex, err := e.session.Registry().Lookup(id)
			if err != nil {
				return err
			}
			if !ex.IsQuiz() {
				return fmt.Errorf("%s is a code exercise; use the check command", id)
			}

			path, _ := cmd.Flags().GetString("answers")
			raw, err := readSource(cmd, path)
			if err != nil {
				return err
			}
			var answers []string
			if err := yaml.Unmarshal([]byte(raw), &answers); err != nil {
				return fmt.Errorf("parse answers: %w", err)
			}

			e.session.GoTo(id)
			fb := e.session.SubmitQuiz(cmd.Context(), answers)

			out := cmd.OutOrStdout()
			if fb.Score != nil {
				for i, q := range ex.Questions {
					mark := "✗"
					if i < len(fb.Score.PerQuestion) && fb.Score.PerQuestion[i] {
						mark = "✓"
					}
					fmt.Fprintf(out, "%s %d. %s\n", mark, i+1, q.Prompt)
				}
				fmt.Fprintln(out, fb.Score.String())
			}

			if !fb.Passed {
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %s\n", id, fb.Message)
				return ErrCheckFailed
			}
			fmt.Fprintf(out, "PASS %s: %s\n", id, fb.Message)
			return nil
		},
	}
	c.Flags().StringP("answers", "a", "", "YAML file with a list of answers, or - for stdin")
	_ = c.MarkFlagRequired("answers")
	return c
}

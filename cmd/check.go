package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/a11ytutor/internal/curriculum"
)

func newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check <id>",
		Short: "Validate HTML against a code exercise",
		Long: "Validate HTML read from --file (or stdin) against the rule of a code\n" +
			"exercise. Exits 1 with the diagnostic on stderr when it does not pass.",
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
			if ex.Kind != curriculum.KindCode {
				return fmt.Errorf("%s is a quiz; use the quiz command", id)
			}

			path, _ := cmd.Flags().GetString("file")
			src, err := readSource(cmd, path)
			if err != nil {
				return err
			}

			e.session.GoTo(id)
			fb := e.session.SubmitCode(cmd.Context(), src)
			if !fb.Passed {
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %s\n", id, fb.Message)
				return ErrCheckFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PASS %s: %s\n", id, fb.Message)
			return nil
		},
	}
	c.Flags().StringP("file", "f", "-", "HTML file to check, or - for stdin")
	return c
}

// readSource reads path, or the command's stdin when path is "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" || path == "" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

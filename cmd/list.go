package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/a11ytutor/internal/curriculum"
)

func newListCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "list",
		Short: "List the curriculum (optionally one group or kind)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			reg, err := loadCurriculum(cfg)
			if err != nil {
				return fmt.Errorf("load curriculum: %w", err)
			}

			kind, _ := cmd.Flags().GetString("kind")
			group, _ := cmd.Flags().GetString("group")
			switch curriculum.Kind(kind) {
			case "", curriculum.KindCode, curriculum.KindQuiz:
			default:
				return fmt.Errorf("--kind must be code or quiz, got %q", kind)
			}

			out := cmd.OutOrStdout()
			shown := 0
			for _, g := range reg.Groups() {
				if group != "" && !strings.EqualFold(g.Name, group) && !strings.HasPrefix(g.Name, group+".") {
					continue
				}
				rows := make([]curriculum.Exercise, 0, len(g.Exercises))
				for _, ex := range g.Exercises {
					if kind == "" || ex.Kind == curriculum.Kind(kind) {
						rows = append(rows, ex)
					}
				}
				if len(rows) == 0 {
					continue
				}

				fmt.Fprintln(out, g.Name)
				fmt.Fprintln(out, strings.Repeat("─", 60))
				for _, ex := range rows {
					fmt.Fprintf(out, "  %-8s  %-4s  %s\n", ex.ID, ex.Kind, ex.Title)
				}
				fmt.Fprintln(out)
				shown += len(rows)
			}
			if shown == 0 {
				return fmt.Errorf("no exercises match")
			}

			fmt.Fprintf(out, "%d exercises\n", shown)
			return nil
		},
	}
	c.Flags().String("kind", "", "Only show code or quiz exercises")
	c.Flags().String("group", "", "Only show one group (full name or its number, e.g. 2)")
	return c
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/a11ytutor/internal/store"
)

func newStatsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "stats",
		Short: "Show attempt statistics from the journal",
		Long: "Summarize the attempt journal. Only useful with a file-backed journal\n" +
			"(--journal or A11Y_JOURNAL_DSN); the default in-memory journal is empty.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			sessionID, _ := cmd.Flags().GetString("session")
			exerciseID, _ := cmd.Flags().GetString("exercise")
			limit, _ := cmd.Flags().GetInt("limit")
			opts := store.QueryOpts{SessionID: sessionID, ExerciseID: exerciseID}

			repo := e.store.EventRepo()
			ctx := cmd.Context()
			st, err := repo.Stats(ctx, opts)
			if err != nil {
				return fmt.Errorf("query stats: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Attempts:  %d\n", st.Attempts)
			fmt.Fprintf(out, "Passed:    %d\n", st.Passed)
			fmt.Fprintf(out, "Exercises: %d\n", st.Exercises)

			opts.Limit = limit
			events, err := repo.MasteryEvents(ctx, opts)
			if err != nil {
				return fmt.Errorf("query mastery events: %w", err)
			}
			if len(events) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "%-20s  %-8s  %-12s  %s\n", "Mastered at", "ID", "Trigger", "Session")
			fmt.Fprintln(out, strings.Repeat("─", 80))
			for _, ev := range events {
				fmt.Fprintf(out, "%-20s  %-8s  %-12s  %s\n",
					ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
					ev.ExerciseID, ev.Trigger, ev.SessionID)
			}
			return nil
		},
	}
	c.Flags().String("session", "", "Only count one session")
	c.Flags().String("exercise", "", "Only count one exercise")
	c.Flags().Int("limit", 20, "Max mastery events to list (0 = all)")
	return c
}

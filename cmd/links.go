package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links <id>",
		Short: "Print W3C reference links for a success criterion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			reg, err := loadCurriculum(cfg)
			if err != nil {
				return fmt.Errorf("load curriculum: %w", err)
			}

			id := args[0]
			links := reg.Links()
			learn, hasLearn := links.Understanding(id)
			video, hasVideo := links.Video(id)
			if !hasLearn && !hasVideo {
				return fmt.Errorf("no links for %q", id)
			}

			out := cmd.OutOrStdout()
			if hasLearn {
				fmt.Fprintf(out, "Learn: %s\n", learn)
			}
			if hasVideo {
				fmt.Fprintf(out, "Video: %s\n", video)
			}
			return nil
		},
	}
}

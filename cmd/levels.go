package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Group topics by their depth below the root topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			levels := e.Levels()
			w := cmd.OutOrStdout()
			for _, d := range slices.Sorted(maps.Keys(levels)) {
				label := theme.Label.Render(fmt.Sprintf("Level %d", d))
				lipgloss.Fprintln(w, label+"  "+theme.Body.Render(strings.Join(levels[d], ", ")))
			}
			return nil
		},
	}
}

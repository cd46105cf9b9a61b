package cmd

import (
	"encoding/json"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/ui/components"
)

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path TARGET",
		Short: "Plan a learning path to TARGET",
		Long: "Plan a learning path to TARGET: every prerequisite you still need,\n" +
			"in study order, ending with TARGET. Topics passed with --known, and\n" +
			"everything they build on, are left out.",
		Example:           "  pathwise path \"Topological Sort\" --known Trees --known Recursion",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTopics,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			known, _ := cmd.Flags().GetStringSlice("known")
			target := args[0]

			p, err := e.LearningPath(target, known)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}

			for _, k := range p.Ignored {
				printWarning(w, "ignoring unknown topic %q in --known", k)
			}
			if len(p.Topics) == 0 {
				printHeading(w, fmt.Sprintf("You already know %s.", target), "")
				return nil
			}
			if p.Fallback {
				printWarning(w, "a dependency cycle was found; order is approximate (run 'pathwise check')")
			}

			printHeading(w, "Learning path to "+target, fmt.Sprintf("%d steps", len(p.Topics)))
			printSteps(w, p.Topics, target)

			if len(known) > 0 {
				total := len(e.TransitivePrerequisites(target)) + 1
				done := total - len(p.Topics)
				bar := components.NewProgressBar("Covered", float64(done)/float64(total), true, 40)
				lipgloss.Fprintln(w)
				lipgloss.Fprintln(w, bar.View())
			}
			return nil
		},
	}
	cmd.Flags().StringSliceP("known", "k", nil, "Topic you already know (repeatable or comma-separated)")
	cmd.Flags().Bool("json", false, "Print the path as JSON")
	return cmd
}

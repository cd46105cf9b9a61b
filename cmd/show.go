package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "show TOPIC",
		Short:             "Show a topic with its prerequisites and dependents",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTopics,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, c, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			name := args[0]
			if err := requireTopics(e, name); err != nil {
				return err
			}
			t, _ := c.Topic(name)

			var direct []string
			for _, p := range t.Prerequisites {
				if e.Has(p) {
					direct = append(direct, p)
				} else {
					direct = append(direct, theme.Missing.Render(p))
				}
			}

			var b strings.Builder
			b.WriteString(theme.Title.Render(t.Name))
			if t.Category != "" {
				b.WriteString("  " + theme.Subtitle.Render(t.Category))
			}
			b.WriteString("\n")
			if t.Description != "" {
				b.WriteString(theme.Body.Render(t.Description) + "\n")
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "%s %d\n", theme.Label.Render("Depth:"), e.TopicDepth(name))
			fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Requires:"), joinOrNone(direct))
			all := e.TransitivePrerequisites(name)
			fmt.Fprintf(&b, "%s %d topics\n", theme.Label.Render("All prerequisites:"), len(all))
			fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Unlocks:"), joinOrNone(e.DirectDependents(name)))
			fmt.Fprintf(&b, "%s %d topics", theme.Label.Render("All dependents:"), len(e.TransitiveDependents(name)))

			lipgloss.Fprintln(cmd.OutOrStdout(), theme.Card.Render(b.String()))
			return nil
		},
	}
}

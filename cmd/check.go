package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the catalog for undefined prerequisites and cycles",
		Long: "Check the catalog for prerequisites that name no topic and for\n" +
			"dependency cycles. Exits non-zero when any are found.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, c, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			r := e.Report()
			w := cmd.OutOrStdout()

			printField(w, "Topics", strconv.Itoa(r.Topics))
			printField(w, "Edges", strconv.Itoa(r.Edges))
			printField(w, "Roots", joinOrNone(r.Roots))
			printField(w, "Fingerprint", c.Fingerprint())

			for _, d := range r.Dangling {
				lipgloss.Fprintln(w, theme.Failure.Render("undefined:")+
					fmt.Sprintf(" %s requires %s", d.Topic, theme.Missing.Render(d.Prerequisite)))
			}
			for _, cyc := range r.Cycles {
				lipgloss.Fprintln(w, theme.Failure.Render("cycle:")+" "+strings.Join(cyc, " ↔ "))
			}

			if r.OK() {
				lipgloss.Fprintln(w, theme.Title.Foreground(theme.Success).Render("catalog OK"))
				return nil
			}
			return fmt.Errorf("catalog has %d undefined prerequisite(s) and %d cycle(s)",
				len(r.Dangling), len(r.Cycles))
		},
	}
}

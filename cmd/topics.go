package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTopicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List all topics in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if listCats, _ := cmd.Flags().GetBool("categories"); listCats {
				for _, cat := range c.Categories() {
					fmt.Fprintf(w, "%-*s  %d\n", nameWidth, truncate(cat, nameWidth), len(c.ByCategory(cat)))
				}
				return nil
			}

			entries := c.Entries()
			if category, _ := cmd.Flags().GetString("category"); category != "" {
				entries = c.ByCategory(category)
				if len(entries) == 0 {
					return fmt.Errorf("no topics in category %q (see 'pathwise topics --categories')", category)
				}
			}

			fmt.Fprintf(w, "%-*s  %-*s  %s\n", nameWidth, "Topic", nameWidth, "Category", "Prerequisites")
			fmt.Fprintln(w, strings.Repeat("─", 2*nameWidth+20))
			for _, t := range entries {
				fmt.Fprintf(w, "%-*s  %-*s  %s\n",
					nameWidth, truncate(t.Name, nameWidth),
					nameWidth, truncate(t.Category, nameWidth),
					strings.Join(t.Prerequisites, ", "))
			}
			fmt.Fprintf(w, "\n%d topics\n", len(entries))
			return nil
		},
	}
	cmd.Flags().String("category", "", "Only list topics in this category")
	cmd.Flags().Bool("categories", false, "List categories with their topic counts instead")
	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"
)

func newPrereqsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "prereqs TOPIC",
		Short:             "List every topic required before TOPIC",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTopics,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, c, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			if err := requireTopics(e, args[0]); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if direct, _ := cmd.Flags().GetBool("direct"); direct {
				// As declared, including undefined names.
				prereqs := c.DirectPrerequisites(args[0])
				for _, p := range prereqs {
					if !e.Has(p) {
						printWarning(w, "%q is not a defined topic", p)
					}
				}
				printList(w, prereqs)
				return nil
			}
			printList(w, e.TransitivePrerequisites(args[0]))
			return nil
		},
	}
	cmd.Flags().Bool("direct", false, "Only list the prerequisites TOPIC declares itself")
	return cmd
}

func newDependentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "dependents TOPIC",
		Short:             "List every topic that builds on TOPIC",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTopics,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			if err := requireTopics(e, args[0]); err != nil {
				return err
			}
			if direct, _ := cmd.Flags().GetBool("direct"); direct {
				printList(cmd.OutOrStdout(), e.DirectDependents(args[0]))
				return nil
			}
			printList(cmd.OutOrStdout(), e.TransitiveDependents(args[0]))
			return nil
		},
	}
	cmd.Flags().Bool("direct", false, "Only list topics that declare TOPIC directly")
	return cmd
}

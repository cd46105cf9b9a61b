package cmd

import (
	"github.com/spf13/cobra"
)

func newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order TOPIC...",
		Short: "Order the given topics so prerequisites come first",
		Long: "Order the given topics so that, among them, every prerequisite\n" +
			"comes before the topics that need it. Pass no topics to order the whole catalog.",
		ValidArgsFunction: completeTopics,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			topics := args
			if len(topics) == 0 {
				topics = e.Topics()
			}
			if err := requireTopics(e, topics...); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			o := e.TopologicalOrder(topics)
			if o.Fallback {
				printWarning(w, "the topics form a dependency cycle; order is approximate (run 'pathwise check')")
			}
			printSteps(w, o.Topics, "")
			return nil
		},
	}
}

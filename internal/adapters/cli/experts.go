package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/prun-cogm/internal/application/cost/queries"
	"github.com/andrescamacho/prun-cogm/internal/application/logging"
	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
)

// NewExpertsCommand creates the experts command. It needs no database.
func NewExpertsCommand() *cobra.Command {
	var current, target, buildings int

	cmd := &cobra.Command{
		Use:   "experts",
		Short: "Expert efficiency bonuses and spawn times",
		Long: `Show the efficiency bonus of an expert count and how long a category takes
to earn more experts. Work is shared across the buildings of the category.

Examples:
  prun experts --current 2
  prun experts --current 1 --target 4 --buildings 6`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mediator.NewMediator()
			m.RegisterMiddleware(logging.Middleware())
			if err := mediator.RegisterHandler[*queries.ExpertProgressQuery](m, queries.NewExpertProgressHandler()); err != nil {
				return err
			}

			response, err := m.Send(context.Background(), &queries.ExpertProgressQuery{
				CurrentExperts: current,
				TargetExperts:  target,
				Buildings:      buildings,
			})
			if err != nil {
				return err
			}

			result, ok := response.(*queries.ExpertProgressResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			fmt.Printf("\nCurrent bonus (%d experts): %s\n", current, formatPercent(result.CurrentBonus))
			if result.DaysToNextExpert > 0 {
				fmt.Printf("Next expert in:            %.2f days\n", result.DaysToNextExpert)
			} else {
				fmt.Println("Next expert in:            category is full")
			}
			if target > 0 {
				fmt.Printf("Target bonus (%d experts):  %s\n", target, formatPercent(result.TargetBonus))
				fmt.Printf("Days to target:            %.2f\n", result.DaysToTarget)
			} else {
				fmt.Printf("Days to a full category:   %.2f\n", result.DaysToTarget)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&current, "current", 0, "Experts the category has now")
	cmd.Flags().IntVar(&target, "target", 0, "Experts wanted (default: the maximum)")
	cmd.Flags().IntVar(&buildings, "buildings", 1, "Buildings of the category sharing the work")

	return cmd
}

package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/ui"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <goal_id>",
		Short: "Request a study plan from the configured analysis service",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			plan, err := svc.AnalyzeGoal(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPlan, "Plan")+" "+ui.Muted.Render(plan.Feasibility))
			fmt.Fprintln(out, plan.Summary)
			fmt.Fprintln(out, "")
			for i, ph := range plan.Phases {
				fmt.Fprintf(out, "%d. %s %s\n   %s\n", i+1, ui.Key.Render(ph.Name), ui.Muted.Render(fmt.Sprintf("(%d weeks)", ph.Weeks)), ph.Focus)
			}
			if len(plan.DailyTasks) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Daily"))
				for _, t := range plan.DailyTasks {
					fmt.Fprintln(out, "- "+t)
				}
			}
			return nil
		},
	}
}

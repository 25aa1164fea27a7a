package root

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/ui"
)

func requireID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("goal_id is required")
	}
	return nil
}

func newGoalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage stored goals",
	}
	cmd.AddCommand(
		newGoalAddCmd(a),
		newGoalListCmd(a),
		newGoalShowCmd(a),
		newGoalSelectCmd(a),
		newGoalDeleteCmd(a),
	)
	return cmd
}

func newGoalAddCmd(a *app) *cobra.Command {
	var (
		field       string
		deadline    string
		perWeek     float64
		perDay      float64
		level       string
		commitments bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.CreateGoalInput{
				Title:               strings.Join(args, " "),
				Field:               field,
				Deadline:            deadline,
				HoursPerWeek:        perWeek,
				SkillLevel:          level,
				HasOtherCommitments: commitments,
			}
			if cmd.Flags().Changed("hours-per-day") {
				in.HoursPerDay = &perDay
			}
			g, err := svc.CreateGoal(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconPlus+" Added"), g.Title, ui.Muted.Render(g.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "%s Compare approaches: %s\n",
				ui.Muted.Render("💡"),
				ui.Key.Render("pathfy goal show "+g.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&field, "field", "f", "other", "Goal field")
	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Float64VarP(&perWeek, "hours-per-week", "w", 0, "Hours available per week")
	cmd.Flags().Float64Var(&perDay, "hours-per-day", 0, "Hours available per day (default: hours-per-week / 7)")
	cmd.Flags().StringVarP(&level, "level", "l", "beginner", "Self-assessed level (beginner|intermediate|advanced)")
	cmd.Flags().BoolVar(&commitments, "commitments", false, "You have a job, school or family duties")
	_ = cmd.MarkFlagRequired("deadline")
	_ = cmd.MarkFlagRequired("hours-per-week")

	return cmd
}

func newGoalListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			goals, err := svc.Goals(ctx)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No goals yet. Add one with: pathfy goal add"))
				return nil
			}
			for _, g := range goals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s\n", ui.Muted.Render(g.ID), g.Title, ui.Muted.Render("("+g.Field+", due "+g.Deadline+")"))
			}
			return nil
		},
	}
}

func newGoalShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <goal_id>",
		Short: "Show a goal with its evaluations, duration and plan",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := svc.Goal(ctx, args[0])
			if err != nil {
				return err
			}
			evs, err := svc.Evaluations(ctx, g.ID)
			if err != nil {
				return err
			}
			d, err := svc.GoalDuration(ctx, g.ID)
			if err != nil {
				return err
			}
			plan, err := svc.StoredPlan(ctx, g.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printGoal(out, *g, d)
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconTarget+" Approaches"))
			chosen := ""
			if g.SelectedApproachID != nil {
				chosen = *g.SelectedApproachID
			}
			printEvaluations(out, evs, chosen)

			if plan != nil {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconPlan+" Plan")+" "+ui.Muted.Render(plan.Feasibility))
				fmt.Fprintln(out, plan.Summary)
				for _, ph := range plan.Phases {
					fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(ph.Name), ui.Muted.Render(fmt.Sprintf("(%d weeks)", ph.Weeks)), ph.Focus)
				}
			}
			return nil
		},
	}
}

func printGoal(out io.Writer, g storage.Goal, d engine.GoalDuration) {
	fmt.Fprintln(out, ui.Heading(ui.IconPath, g.Title))
	fmt.Fprintln(out, ui.LabelValue("ID", g.ID))
	fmt.Fprintln(out, ui.LabelValue("Field", g.Field))
	fmt.Fprintln(out, ui.LabelValue("Deadline", g.Deadline))
	hours := fmt.Sprintf("%g h/week", g.HoursPerWeek)
	if g.HoursPerDay != nil {
		hours += fmt.Sprintf(", %g h/day", *g.HoursPerDay)
	}
	fmt.Fprintln(out, ui.LabelValue("Time", hours))
	level := ui.LevelText(g.SkillLevel)
	if g.CalibratedSkillLevel != nil {
		level = ui.LevelText(*g.CalibratedSkillLevel) + ui.Muted.Render(" (calibrated)")
	}
	fmt.Fprintln(out, ui.LabelValue("Level", level))

	dur := fmt.Sprintf("%d weeks (from %s)", d.Weeks, d.Source)
	if d.ApproachName != "" {
		dur = fmt.Sprintf("%d weeks (%s)", d.Weeks, d.ApproachName)
	}
	fmt.Fprintln(out, ui.LabelValue("Duration", dur))
}

func newGoalSelectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <goal_id> <approach_id>",
		Short: "Choose the approach to follow for a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("goal_id and approach_id are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := svc.SelectApproach(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			d, err := svc.GoalDuration(ctx, g.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s %s\n", ui.Good.Render(ui.IconDone+" Selected"), g.Title, args[1], ui.Muted.Render(fmt.Sprintf("(%d weeks)", d.Weeks)))
			return nil
		},
	}
}

func newGoalDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <goal_id>",
		Short: "Delete a goal and its quiz results and evaluations",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteGoal(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted "+args[0]))
			return nil
		},
	}
}

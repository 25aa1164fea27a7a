package root

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/catalog"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/ui"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		goalID      string
		field       string
		perDay      float64
		perWeek     float64
		months      int
		level       string
		commitments bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score approaches against your available time",
		Long: "Score every approach of a field against the hours and timeline you have.\n" +
			"With --goal the stored goal is evaluated and the result saved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var evs []engine.Evaluation
			if goalID != "" {
				ctx := cmd.Context()
				svc, cleanup, err := a.openService(ctx)
				if err != nil {
					return err
				}
				defer cleanup()
				if evs, err = svc.EvaluateGoal(ctx, goalID); err != nil {
					return err
				}
			} else {
				if strings.TrimSpace(field) == "" {
					return errors.New("--field or --goal is required")
				}
				if perWeek == 0 {
					perWeek = perDay * 7
				}
				profile := engine.UserProfile{
					AvailableHoursPerDay:  perDay,
					AvailableHoursPerWeek: perWeek,
					TimelineMonths:        months,
					CurrentLevel:          engine.ParseSkillLevel(level),
					HasOtherCommitments:   commitments,
				}
				if err := profile.Validate(); err != nil {
					return err
				}
				evs = a.evaluator().EvaluateAll(catalog.ForField(field), profile)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(evs)
			}
			printEvaluations(cmd.OutOrStdout(), evs, "")
			return nil
		},
	}

	cmd.Flags().StringVarP(&goalID, "goal", "g", "", "Evaluate a stored goal")
	cmd.Flags().StringVarP(&field, "field", "f", "", "Goal field (see pathfy fields)")
	cmd.Flags().Float64Var(&perDay, "hours-per-day", 0, "Hours available per day")
	cmd.Flags().Float64Var(&perWeek, "hours-per-week", 0, "Hours available per week (default: hours-per-day * 7)")
	cmd.Flags().IntVarP(&months, "months", "m", 0, "Months until the deadline")
	cmd.Flags().StringVarP(&level, "level", "l", "beginner", "Current level (beginner|intermediate|advanced)")
	cmd.Flags().BoolVar(&commitments, "commitments", false, "You have a job, school or family duties")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	return cmd
}

func printEvaluations(out io.Writer, evs []engine.Evaluation, chosen string) {
	for _, e := range evs {
		mark := " "
		if e.Approach.ID == chosen {
			mark = ui.Gold.Render(ui.IconStar)
		}
		fmt.Fprintf(out, "%s %s %s · %s\n", mark, ui.H2.Render(e.Approach.Name), ui.FitBadge(string(e.FitStatus)), ui.RiskBadge(string(e.RiskLevel)))
		fmt.Fprintf(out, "  %s\n", ui.Muted.Render(e.Approach.ID+" | "+e.Approach.DurationRange+" | "+e.Approach.DailyEffortRange+" h/day"))
		fmt.Fprintf(out, "  %s\n", e.Reasoning)
	}
}

func newDurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration <range>",
		Short: "Convert a duration range like \"3-6 months\" to average weeks",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("range is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconClock, ui.LabelValue(raw, fmt.Sprintf("%d weeks", engine.ParseApproachDuration(raw))))
			return nil
		},
	}
}

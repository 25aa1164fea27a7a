package root

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/tui"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/ui"
)

func newQuizCmd(a *app) *cobra.Command {
	var answersJSON string

	cmd := &cobra.Command{
		Use:   "quiz <goal_id>",
		Short: "Take the skill-calibration quiz for a goal",
		Long: "Take the skill-calibration quiz interactively, or pass every answer at once\n" +
			"with --answers '{\"question_id\":\"option_value\",...}'.",
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if answersJSON == "" {
				_, err := tui.RunQuiz(ctx, svc, args[0], cmd.OutOrStdout())
				return err
			}

			var answers map[string]string
			if err := json.Unmarshal([]byte(answersJSON), &answers); err != nil {
				return fmt.Errorf("parse --answers: %w", err)
			}
			res, err := svc.RecordQuiz(ctx, args[0], answers)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&answersJSON, "answers", "", "Answers as a JSON object (skips the interactive quiz)")
	return cmd
}

func printResults(out io.Writer, r quiz.Results) {
	fmt.Fprintln(out, ui.Heading(ui.IconQuiz, "Quiz results"))
	fmt.Fprintln(out, ui.LabelValue("Level", ui.LevelText(string(r.CalibratedLevel))))
	fmt.Fprintln(out, ui.LabelValue("Score", fmt.Sprintf("%.1f", r.TotalScore)))
	fmt.Fprintln(out, ui.LabelValue("Confidence", fmt.Sprintf("%d%%", r.Confidence)))

	cats := make([]string, 0, len(r.CategoryScores))
	for c := range r.CategoryScores {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		fmt.Fprintf(out, "- %s %.0f\n", ui.Key.Render(c+":"), r.CategoryScores[c])
	}
}

// Package mcptools exposes the deterministic catalog, evaluator, duration and
// quiz functions as MCP tools so an assistant can call them instead of
// estimating.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/catalog"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
)

// NewServer registers every pathfy tool on a new MCP server.
func NewServer(version string, ev engine.Evaluator) *server.MCPServer {
	s := server.NewMCPServer(
		"pathfy",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	listTool := &ListApproachesTool{}
	s.AddTool(listTool.Definition(), listTool.Handle)

	evalTool := NewEvaluateTool(ev)
	s.AddTool(evalTool.Definition(), evalTool.Handle)

	durTool := &ParseDurationTool{}
	s.AddTool(durTool.Definition(), durTool.Handle)

	questionsTool := &QuizQuestionsTool{}
	s.AddTool(questionsTool.Definition(), questionsTool.Handle)

	scoreTool := &ScoreQuizTool{}
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	return s
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

// ListApproachesTool handles pathfy_list_approaches.
type ListApproachesTool struct{}

func (t *ListApproachesTool) Definition() mcp.Tool {
	return mcp.NewTool("pathfy_list_approaches",
		mcp.WithDescription("List the preparation approaches for a goal field. Unknown fields return the default list."),
		mcp.WithString("field",
			mcp.Required(),
			mcp.Description("Goal field: "+strings.Join(catalog.Fields(), ", ")),
		),
	)
}

func (t *ListApproachesTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field := strings.TrimSpace(req.GetString("field", ""))
	if field == "" {
		return mcp.NewToolResultError("'field' is required"), nil
	}
	return jsonResult(catalog.ForField(field))
}

// EvaluateTool handles pathfy_evaluate_approaches.
type EvaluateTool struct {
	evaluator engine.Evaluator
}

func NewEvaluateTool(ev engine.Evaluator) *EvaluateTool {
	return &EvaluateTool{evaluator: ev}
}

func (t *EvaluateTool) Definition() mcp.Tool {
	return mcp.NewTool("pathfy_evaluate_approaches",
		mcp.WithDescription("Score every approach of a field against the user's available time, timeline and commitments. "+
			"Returns fit_status (good_fit, needs_adjustment, high_pressure), risk_level and reasoning per approach."),
		mcp.WithString("field", mcp.Required(), mcp.Description("Goal field, e.g. tech or exams")),
		mcp.WithNumber("hours_per_day", mcp.Required(), mcp.Description("Hours available per day (> 0)")),
		mcp.WithNumber("hours_per_week", mcp.Description("Hours available per week (default: hours_per_day * 7)")),
		mcp.WithNumber("timeline_months", mcp.Required(), mcp.Description("Whole months until the deadline (>= 1)")),
		mcp.WithString("current_level", mcp.Description("beginner (default), intermediate or advanced")),
		mcp.WithBoolean("has_other_commitments", mcp.Description("Whether the user has a job, school or family duties")),
	)
}

func (t *EvaluateTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field := strings.TrimSpace(req.GetString("field", ""))
	if field == "" {
		return mcp.NewToolResultError("'field' is required"), nil
	}
	perDay := req.GetFloat("hours_per_day", 0)
	level := engine.ParseSkillLevel(req.GetString("current_level", ""))
	months := req.GetFloat("timeline_months", 0)
	if months != math.Trunc(months) {
		return mcp.NewToolResultError("'timeline_months' must be a whole number of months"), nil
	}

	profile := engine.UserProfile{
		AvailableHoursPerDay:  perDay,
		AvailableHoursPerWeek: req.GetFloat("hours_per_week", perDay*7),
		TimelineMonths:        int(months),
		CurrentLevel:          level,
		HasOtherCommitments:   req.GetBool("has_other_commitments", false),
	}
	if err := profile.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(t.evaluator.EvaluateAll(catalog.ForField(field), profile))
}

// ParseDurationTool handles pathfy_parse_duration.
type ParseDurationTool struct{}

func (t *ParseDurationTool) Definition() mcp.Tool {
	return mcp.NewTool("pathfy_parse_duration",
		mcp.WithDescription("Convert a duration range such as \"3-6 months\" or \"8-12 weeks\" to an average number of weeks."),
		mcp.WithString("range", mcp.Required(), mcp.Description("Duration text")),
	)
}

func (t *ParseDurationTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("range", "")
	if strings.TrimSpace(raw) == "" {
		return mcp.NewToolResultError("'range' is required"), nil
	}
	return jsonResult(map[string]any{
		"range": raw,
		"weeks": engine.ParseApproachDuration(raw),
	})
}

// QuizQuestionsTool handles pathfy_quiz_questions.
type QuizQuestionsTool struct{}

func (t *QuizQuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("pathfy_quiz_questions",
		mcp.WithDescription("Return the skill-calibration questions for a field, in the order they must be answered."),
		mcp.WithString("field", mcp.Required(), mcp.Description("Goal field; unknown fields use the general set")),
	)
}

func (t *QuizQuestionsTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(quiz.ForField(strings.TrimSpace(req.GetString("field", ""))))
}

// ScoreQuizTool handles pathfy_score_quiz.
type ScoreQuizTool struct{}

func (t *ScoreQuizTool) Definition() mcp.Tool {
	return mcp.NewTool("pathfy_score_quiz",
		mcp.WithDescription("Score a complete set of quiz answers and return the calibrated level, category scores and confidence."),
		mcp.WithString("field", mcp.Required(), mcp.Description("Goal field the questions were taken from")),
		mcp.WithObject("answers", mcp.Required(), mcp.Description("Map of question id to the chosen option value")),
	)
}

func (t *ScoreQuizTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers, err := answersArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := quiz.Score(quiz.ForField(strings.TrimSpace(req.GetString("field", ""))), answers)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(res)
}

// answersArg accepts the answers either as an object or as a JSON string.
func answersArg(req mcp.CallToolRequest) (map[string]string, error) {
	switch v := req.GetArguments()["answers"].(type) {
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("answer for %q must be a string", k)
			}
			out[k] = s
		}
		return out, nil
	case string:
		var out map[string]string
		if err := json.Unmarshal([]byte(v), &out); err != nil {
			return nil, fmt.Errorf("'answers' is not a JSON object: %v", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("'answers' is required")
	}
}

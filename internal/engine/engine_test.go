package engine

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/analysis"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/catalog"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

var testNow = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	svc := NewService(db, opts...)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func createTechGoal(t *testing.T, svc *Service) *storage.Goal {
	t.Helper()
	g, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		Title:        "  Become a backend developer ",
		Field:        "programming",
		Deadline:     "2027-06-16",
		HoursPerWeek: 14,
		SkillLevel:   "Beginner",
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	return g
}

func TestEvaluateApproachExamples(t *testing.T) {
	pressured := EvaluateApproach(catalog.Template{
		ID:                "x",
		DailyEffortRange:  "4-6",
		DurationRange:     "3-6 months",
		LifestyleTradeOff: catalog.TradeOffVeryHigh,
	}, UserProfile{AvailableHoursPerDay: 2, AvailableHoursPerWeek: 14, TimelineMonths: 6, CurrentLevel: quiz.LevelBeginner, HasOtherCommitments: true})
	if pressured.FitStatus != FitHighPressure || pressured.RiskLevel != RiskHigh {
		t.Fatalf("got %s/%s, want high_pressure/high", pressured.FitStatus, pressured.RiskLevel)
	}
	wantReason := "This approach requires 4-6 hours/day, but you have 2 hours available." +
		" This approach requires very high lifestyle trade-off which may conflict with your other commitments."
	if pressured.Reasoning != wantReason {
		t.Fatalf("reasoning=%q", pressured.Reasoning)
	}

	good := EvaluateApproach(catalog.Template{
		ID:                "y",
		DailyEffortRange:  "2-3",
		DurationRange:     "6-12 months",
		LifestyleTradeOff: catalog.TradeOffMedium,
	}, UserProfile{AvailableHoursPerDay: 5, AvailableHoursPerWeek: 35, TimelineMonths: 10})
	if good.FitStatus != FitGood || good.RiskLevel != RiskLow {
		t.Fatalf("got %s/%s, want good_fit/low", good.FitStatus, good.RiskLevel)
	}
	if good.Reasoning != "Your available 5 hours/day aligns well with this approach." {
		t.Fatalf("reasoning=%q", good.Reasoning)
	}
}

func TestEvaluateApproachClauses(t *testing.T) {
	tpl := catalog.Template{DailyEffortRange: "2-3", DurationRange: "6-12 months", LifestyleTradeOff: catalog.TradeOffVeryHigh}

	tests := []struct {
		name   string
		user   UserProfile
		fit    FitStatus
		risk   RiskLevel
		reason string
	}{
		{
			name:   "partial hours",
			user:   UserProfile{AvailableHoursPerDay: 2.5, TimelineMonths: 8},
			fit:    FitNeedsAdjustment,
			risk:   RiskModerate,
			reason: "You can manage this with your available 2.5 hours, but the recommended is 3 hours/day.",
		},
		{
			name: "short timeline escalates",
			user: UserProfile{AvailableHoursPerDay: 4, TimelineMonths: 3},
			fit:  FitHighPressure,
			risk: RiskHigh,
			reason: "Your available 4 hours/day aligns well with this approach." +
				" Your timeline of 3 months is shorter than the typical 6-12 months for this approach.",
		},
		{
			name: "long timeline is informational",
			user: UserProfile{AvailableHoursPerDay: 3, TimelineMonths: 20},
			fit:  FitGood,
			risk: RiskLow,
			reason: "Your available 3 hours/day aligns well with this approach." +
				" You have 20 months, which gives you extra buffer beyond the typical 12 months.",
		},
		{
			name: "commitments soften a good fit",
			user: UserProfile{AvailableHoursPerDay: 3, TimelineMonths: 12, HasOtherCommitments: true},
			fit:  FitNeedsAdjustment,
			risk: RiskModerate,
			reason: "Your available 3 hours/day aligns well with this approach." +
				" This approach requires very high lifestyle trade-off which may conflict with your other commitments.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateApproach(tpl, tt.user)
			if got.FitStatus != tt.fit || got.RiskLevel != tt.risk {
				t.Fatalf("got %s/%s, want %s/%s", got.FitStatus, got.RiskLevel, tt.fit, tt.risk)
			}
			if got.Reasoning != tt.reason {
				t.Fatalf("reasoning=%q\nwant      %q", got.Reasoning, tt.reason)
			}
		})
	}
}

func TestEvaluateApproachMalformedRangesDegradeToGoodFit(t *testing.T) {
	got := EvaluateApproach(catalog.Template{DailyEffortRange: "flexible", DurationRange: "open ended"}, UserProfile{AvailableHoursPerDay: 1, TimelineMonths: 3})
	if got.FitStatus != FitGood || got.RiskLevel != RiskLow {
		t.Fatalf("got %s/%s, want good_fit/low", got.FitStatus, got.RiskLevel)
	}
	if !strings.HasSuffix(got.Reasoning, " You have 3 months, which gives you extra buffer beyond the typical 0 months.") {
		t.Fatalf("reasoning=%q", got.Reasoning)
	}
}

func TestEvaluatorUnitAwareConvertsWeeks(t *testing.T) {
	tpl, ok := catalog.ByID("exams", "crash_revision")
	if !ok {
		t.Fatalf("crash_revision missing from catalog")
	}
	user := UserProfile{AvailableHoursPerDay: 8, AvailableHoursPerWeek: 56, TimelineMonths: 2, CurrentLevel: quiz.LevelIntermediate}

	faithful := Evaluator{}.Evaluate(tpl, user)
	if faithful.FitStatus != FitHighPressure {
		t.Fatalf("faithful fit=%s, want high_pressure", faithful.FitStatus)
	}
	if !strings.Contains(faithful.Reasoning, "typical 8-12 months") {
		t.Fatalf("faithful reasoning=%q", faithful.Reasoning)
	}

	aware := Evaluator{UnitAware: true}.Evaluate(tpl, user)
	if aware.FitStatus != FitGood || aware.RiskLevel != RiskLow {
		t.Fatalf("unit aware got %s/%s, want good_fit/low", aware.FitStatus, aware.RiskLevel)
	}
}

func TestSeverityNeverDowngrades(t *testing.T) {
	hours := []float64{0.5, 1, 2, 3, 5, 8, 12}
	months := []int{1, 2, 4, 6, 9, 12, 24, 36}
	for _, field := range catalog.Fields() {
		for _, tpl := range catalog.ForField(field) {
			for _, h := range hours {
				for _, m := range months {
					for _, busy := range []bool{false, true} {
						user := UserProfile{AvailableHoursPerDay: h, AvailableHoursPerWeek: h * 7, TimelineMonths: m, HasOtherCommitments: busy}
						got := EvaluateApproach(tpl, user)

						baseFit, baseRisk := FitGood, RiskLow
						switch {
						case h < float64(tpl.DailyEffort.Min):
							baseFit, baseRisk = FitHighPressure, RiskHigh
						case h < float64(tpl.DailyEffort.Max):
							baseFit, baseRisk = FitNeedsAdjustment, RiskModerate
						}
						if got.FitStatus.rank() < baseFit.rank() || got.RiskLevel.rank() < baseRisk.rank() {
							t.Fatalf("%s/%s h=%v m=%d: %s/%s below baseline %s/%s", field, tpl.ID, h, m, got.FitStatus, got.RiskLevel, baseFit, baseRisk)
						}
						if baseRisk == RiskHigh && got.RiskLevel != RiskHigh {
							t.Fatalf("%s/%s: high risk was lowered to %s", field, tpl.ID, got.RiskLevel)
						}
					}
				}
			}
		}
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	user := UserProfile{AvailableHoursPerDay: 3, AvailableHoursPerWeek: 21, TimelineMonths: 5, HasOtherCommitments: true}
	ts := catalog.ForField("govt")
	a := EvaluateAll(ts, user)
	b := EvaluateAll(ts, user)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("EvaluateAll not deterministic")
	}
	if len(a) != len(ts) {
		t.Fatalf("len=%d, want %d", len(a), len(ts))
	}
	for i := range ts {
		if a[i].Approach.ID != ts[i].ID {
			t.Fatalf("order changed at %d: %s vs %s", i, a[i].Approach.ID, ts[i].ID)
		}
	}
}

func TestParseApproachDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3-6 months", 18},
		{"12-24 months", 72},
		{"10-12 months", 44},
		{"no numbers here", 12},
		{"8-12 weeks", 10},
		{"6 Months", 24},
		{"3 weeks", 3},
		{"", 12},
		{"99999999999999999999-99999999999999999999 months", 12},
		{"3-99999999999999999999 weeks", 12},
		{"9000000000000000000-9000000000000000000 months", 12},
	}
	for _, tt := range tests {
		if got := ParseApproachDuration(tt.in); got != tt.want {
			t.Fatalf("ParseApproachDuration(%q)=%d, want %d", tt.in, got, tt.want)
		}
	}

	for _, field := range catalog.Fields() {
		for _, tpl := range catalog.ForField(field) {
			if w := ParseApproachDuration(tpl.DurationRange); w <= 0 {
				t.Fatalf("%s/%s: duration %q gave %d weeks", field, tpl.ID, tpl.DurationRange, w)
			}
		}
	}
}

func TestGoalDurationWeeks(t *testing.T) {
	approach := "structured_part_time"
	unknown := "does_not_exist"

	tests := []struct {
		name string
		goal storage.Goal
		want GoalDuration
	}{
		{
			name: "selected approach",
			goal: storage.Goal{Field: "tech", SelectedApproachID: &approach, Deadline: "2026-11-01"},
			want: GoalDuration{Weeks: 36, Source: SourceApproach, ApproachName: "Structured Part-Time Track"},
		},
		{
			name: "unknown approach falls back to deadline",
			goal: storage.Goal{Field: "tech", SelectedApproachID: &unknown, Deadline: "2026-10-30"},
			want: GoalDuration{Weeks: 2, Source: SourceDeadline},
		},
		{
			name: "partial week rounds up",
			goal: storage.Goal{Field: "tech", Deadline: "2026-10-24"},
			want: GoalDuration{Weeks: 2, Source: SourceDeadline},
		},
		{
			name: "past deadline clamps to one week",
			goal: storage.Goal{Field: "tech", Deadline: "2026-01-01"},
			want: GoalDuration{Weeks: 1, Source: SourceDeadline},
		},
		{
			name: "garbage deadline",
			goal: storage.Goal{Field: "tech", Deadline: "soon"},
			want: GoalDuration{Weeks: 1, Source: SourceDeadline},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalDurationWeeks(tt.goal, testNow); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProfileFromGoal(t *testing.T) {
	g := storage.Goal{Deadline: "2027-04-16", HoursPerWeek: 10, SkillLevel: "intermediate"}
	p := ProfileFromGoal(g, testNow)
	if p.AvailableHoursPerDay != 1.4 {
		t.Fatalf("AvailableHoursPerDay=%v, want 1.4", p.AvailableHoursPerDay)
	}
	if p.TimelineMonths != 7 {
		t.Fatalf("TimelineMonths=%d, want 7", p.TimelineMonths)
	}
	if p.CurrentLevel != quiz.LevelIntermediate {
		t.Fatalf("CurrentLevel=%s", p.CurrentLevel)
	}

	perDay := 3.0
	calibrated := "advanced"
	g.HoursPerDay = &perDay
	g.CalibratedSkillLevel = &calibrated
	g.Deadline = "2026-10-01"
	p = ProfileFromGoal(g, testNow)
	if p.AvailableHoursPerDay != 3 || p.CurrentLevel != quiz.LevelAdvanced || p.TimelineMonths != 1 {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	tiny := storage.Goal{Deadline: "2027-04-16", HoursPerWeek: 0.3}
	p = ProfileFromGoal(tiny, testNow)
	if p.AvailableHoursPerDay <= 0 {
		t.Fatalf("AvailableHoursPerDay=%v, want > 0", p.AvailableHoursPerDay)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate tiny weekly hours: %v", err)
	}
	ev := EvaluateApproach(catalog.ForField("tech")[0], p)
	if strings.Contains(ev.Reasoning, "you have 0 hours") {
		t.Fatalf("reasoning reports zero hours: %q", ev.Reasoning)
	}
}

func TestUserProfileValidate(t *testing.T) {
	p := UserProfile{AvailableHoursPerDay: 2, AvailableHoursPerWeek: 14, TimelineMonths: 0, CurrentLevel: quiz.LevelBeginner}
	var ve ValidationError
	if err := p.Validate(); !errors.As(err, &ve) || ve.Field != "timeline_months" {
		t.Fatalf("Validate err=%v, want timeline_months validation error", err)
	}
}

func TestParseField(t *testing.T) {
	tests := map[string]string{
		"TECH":             "tech",
		" coding ":         "tech",
		"medical":          "medical",
		"fitness":          "sports",
		"":                 "other",
		"default":          "other",
		"underwater":       "other",
		"Exams":            "exams",
		"civil":            "govt",
		"writing":          "creative",
		"skills":           "skills",
		"entrepreneurship": "business",
	}
	for in, want := range tests {
		if got := ParseField(in); got != want {
			t.Fatalf("ParseField(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestCreateGoalValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	bad := []struct {
		in    CreateGoalInput
		field string
	}{
		{CreateGoalInput{Title: " ", Deadline: "2027-01-01", HoursPerWeek: 5}, "title"},
		{CreateGoalInput{Title: "x", Deadline: "next year", HoursPerWeek: 5}, "deadline"},
		{CreateGoalInput{Title: "x", Deadline: "2027-01-01", HoursPerWeek: 0}, "hours_per_week"},
	}
	for _, tt := range bad {
		_, err := svc.CreateGoal(ctx, tt.in)
		var ve ValidationError
		if !errors.As(err, &ve) || ve.Field != tt.field {
			t.Fatalf("CreateGoal(%+v) err=%v, want %s validation error", tt.in, err, tt.field)
		}
	}

	g := createTechGoal(t, svc)
	if g.Title != "Become a backend developer" || g.Field != "tech" || g.SkillLevel != "beginner" {
		t.Fatalf("unexpected goal: %+v", g)
	}
	if !g.CreatedAt.Equal(testNow) {
		t.Fatalf("CreatedAt=%v", g.CreatedAt)
	}
}

func TestEvaluateGoalStoresSnapshot(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	g := createTechGoal(t, svc)

	evs, err := svc.EvaluateGoal(ctx, g.ID)
	if err != nil {
		t.Fatalf("EvaluateGoal: %v", err)
	}
	want := []struct {
		id   string
		fit  FitStatus
		risk RiskLevel
	}{
		{"bootcamp_intensive", FitHighPressure, RiskHigh},
		{"structured_part_time", FitNeedsAdjustment, RiskModerate},
		{"self_paced_projects", FitHighPressure, RiskHigh},
	}
	if len(evs) != len(want) {
		t.Fatalf("len=%d, want %d", len(evs), len(want))
	}
	for i, w := range want {
		if evs[i].Approach.ID != w.id || evs[i].FitStatus != w.fit || evs[i].RiskLevel != w.risk {
			t.Fatalf("evs[%d]=%s %s/%s, want %s %s/%s", i, evs[i].Approach.ID, evs[i].FitStatus, evs[i].RiskLevel, w.id, w.fit, w.risk)
		}
	}

	stored, err := svc.Evaluations(ctx, g.ID)
	if err != nil {
		t.Fatalf("Evaluations: %v", err)
	}
	if !reflect.DeepEqual(stored, evs) {
		t.Fatalf("stored snapshot differs:\n%+v\n%+v", stored, evs)
	}

	if _, err := svc.EvaluateGoal(ctx, "missing"); !errors.As(err, new(NotFoundError)) {
		t.Fatalf("EvaluateGoal missing err=%v, want NotFoundError", err)
	}
}

func TestEvaluationsRefreshWhenTimelineMoves(t *testing.T) {
	now := testNow
	svc, cleanup := newTestService(t, WithClock(func() time.Time { return now }))
	defer cleanup()
	ctx := context.Background()
	g := createTechGoal(t, svc)

	if _, err := svc.EvaluateGoal(ctx, g.ID); err != nil {
		t.Fatalf("EvaluateGoal: %v", err)
	}
	if _, evaluated, err := svc.CurrentEvaluations(ctx, g.ID); err != nil || evaluated {
		t.Fatalf("same day: evaluated=%v err=%v, want stored snapshot", evaluated, err)
	}

	now = testNow.AddDate(0, 0, 2)
	if _, evaluated, err := svc.CurrentEvaluations(ctx, g.ID); err != nil || evaluated {
		t.Fatalf("same month bucket: evaluated=%v err=%v, want stored snapshot", evaluated, err)
	}

	now = testNow.AddDate(0, 2, 0)
	evs, evaluated, err := svc.CurrentEvaluations(ctx, g.ID)
	if err != nil || !evaluated {
		t.Fatalf("two months later: evaluated=%v err=%v, want re-evaluation", evaluated, err)
	}
	rows, err := svc.EvaluationRepo().ListForGoal(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListForGoal: %v", err)
	}
	if len(rows) != len(evs) || !rows[0].EvaluatedAt.Equal(now) {
		t.Fatalf("snapshot not replaced: %+v", rows)
	}
}

func TestRecordQuizDropsEvaluationSnapshot(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	g := createTechGoal(t, svc)

	if _, err := svc.EvaluateGoal(ctx, g.ID); err != nil {
		t.Fatalf("EvaluateGoal: %v", err)
	}
	if _, err := svc.RecordQuiz(ctx, g.ID, techAnswers(func(q quiz.Question) string { return q.Options[3].Value })); err != nil {
		t.Fatalf("RecordQuiz: %v", err)
	}
	rows, err := svc.EvaluationRepo().ListForGoal(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListForGoal: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("snapshot kept after calibration: %d rows", len(rows))
	}
	if _, evaluated, err := svc.CurrentEvaluations(ctx, g.ID); err != nil || !evaluated {
		t.Fatalf("evaluated=%v err=%v, want re-evaluation with calibrated level", evaluated, err)
	}
}

func TestSelectApproachAndDuration(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	g := createTechGoal(t, svc)

	d, err := svc.GoalDuration(ctx, g.ID)
	if err != nil {
		t.Fatalf("GoalDuration: %v", err)
	}
	if d.Source != SourceDeadline || d.Weeks != 35 {
		t.Fatalf("deadline duration=%+v, want 35 weeks", d)
	}

	var nf NotFoundError
	if _, err := svc.SelectApproach(ctx, g.ID, "intensive"); !errors.As(err, &nf) || nf.Kind != "approach" {
		t.Fatalf("SelectApproach foreign id err=%v", err)
	}

	updated, err := svc.SelectApproach(ctx, g.ID, "structured_part_time")
	if err != nil {
		t.Fatalf("SelectApproach: %v", err)
	}
	if updated.SelectedApproachID == nil || *updated.SelectedApproachID != "structured_part_time" {
		t.Fatalf("SelectedApproachID=%v", updated.SelectedApproachID)
	}

	d, err = svc.GoalDuration(ctx, g.ID)
	if err != nil {
		t.Fatalf("GoalDuration: %v", err)
	}
	if d != (GoalDuration{Weeks: 36, Source: SourceApproach, ApproachName: "Structured Part-Time Track"}) {
		t.Fatalf("approach duration=%+v", d)
	}
}

func techAnswers(value func(q quiz.Question) string) map[string]string {
	out := map[string]string{}
	for _, q := range quiz.ForField("tech") {
		out[q.ID] = value(q)
	}
	return out
}

func TestRecordQuizCalibratesGoal(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	g := createTechGoal(t, svc)

	partial := techAnswers(func(q quiz.Question) string { return q.Options[3].Value })
	delete(partial, "tech_tools")
	if _, err := svc.RecordQuiz(ctx, g.ID, partial); !errors.Is(err, quiz.ErrIncomplete) {
		t.Fatalf("RecordQuiz partial err=%v, want ErrIncomplete", err)
	}

	res, err := svc.RecordQuiz(ctx, g.ID, techAnswers(func(q quiz.Question) string { return q.Options[3].Value }))
	if err != nil {
		t.Fatalf("RecordQuiz: %v", err)
	}
	if res.CalibratedLevel != quiz.LevelAdvanced {
		t.Fatalf("CalibratedLevel=%s, want advanced", res.CalibratedLevel)
	}

	got, err := svc.Goal(ctx, g.ID)
	if err != nil {
		t.Fatalf("Goal: %v", err)
	}
	if got.CalibratedSkillLevel == nil || *got.CalibratedSkillLevel != "advanced" {
		t.Fatalf("CalibratedSkillLevel=%v", got.CalibratedSkillLevel)
	}
	if ProfileFromGoal(*got, testNow).CurrentLevel != quiz.LevelAdvanced {
		t.Fatalf("profile level did not follow calibration")
	}

	latest, err := svc.LatestQuiz(ctx, g.ID)
	if err != nil {
		t.Fatalf("LatestQuiz: %v", err)
	}
	if latest == nil || latest.Confidence != res.Confidence || latest.CalibratedLevel != "advanced" {
		t.Fatalf("latest=%+v", latest)
	}
}

type fakeAnalyzer struct {
	got  analysis.Request
	plan *analysis.Plan
	err  error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req analysis.Request) (*analysis.Plan, error) {
	f.got = req
	return f.plan, f.err
}

func TestAnalyzeGoal(t *testing.T) {
	ctx := context.Background()

	plain, cleanupPlain := newTestService(t)
	defer cleanupPlain()
	g := createTechGoal(t, plain)
	if _, err := plain.AnalyzeGoal(ctx, g.ID); !errors.Is(err, ErrAnalysisDisabled) {
		t.Fatalf("AnalyzeGoal without analyzer err=%v", err)
	}

	fa := &fakeAnalyzer{plan: &analysis.Plan{
		Feasibility: "challenging",
		Summary:     "Tight but doable",
		Phases:      []analysis.Phase{{Name: "Basics", Weeks: 6, Focus: "syntax"}},
		DailyTasks:  []string{"Practice 30 minutes"},
	}}
	svc, cleanup := newTestService(t, WithAnalyzer(fa))
	defer cleanup()
	g = createTechGoal(t, svc)
	if _, err := svc.SelectApproach(ctx, g.ID, "structured_part_time"); err != nil {
		t.Fatalf("SelectApproach: %v", err)
	}

	plan, err := svc.AnalyzeGoal(ctx, g.ID)
	if err != nil {
		t.Fatalf("AnalyzeGoal: %v", err)
	}
	if plan.Summary != "Tight but doable" {
		t.Fatalf("plan=%+v", plan)
	}
	if fa.got.Goal.Field != "tech" || fa.got.Profile.HoursPerDay != 2 || fa.got.Profile.TimelineMonths != 9 {
		t.Fatalf("request=%+v", fa.got)
	}
	if fa.got.Duration.Weeks != 36 || fa.got.Duration.Source != "approach" {
		t.Fatalf("duration=%+v", fa.got.Duration)
	}
	if fa.got.Quiz != nil {
		t.Fatalf("quiz should be omitted before calibration")
	}
	if len(fa.got.Evaluations) != 3 || !fa.got.Evaluations[1].Selected || fa.got.Evaluations[0].Selected {
		t.Fatalf("evaluations=%+v", fa.got.Evaluations)
	}

	stored, err := svc.StoredPlan(ctx, g.ID)
	if err != nil {
		t.Fatalf("StoredPlan: %v", err)
	}
	if stored == nil || !reflect.DeepEqual(*stored, *plan) {
		t.Fatalf("stored plan=%+v", stored)
	}

	fa.err = errors.New("upstream down")
	if _, err := svc.AnalyzeGoal(ctx, g.ID); err == nil || !strings.Contains(err.Error(), "upstream down") {
		t.Fatalf("AnalyzeGoal err=%v", err)
	}
}

func TestDeleteGoal(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	g := createTechGoal(t, svc)

	if err := svc.DeleteGoal(ctx, g.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if _, err := svc.Goal(ctx, g.ID); !errors.As(err, new(NotFoundError)) {
		t.Fatalf("Goal after delete err=%v", err)
	}
	if err := svc.DeleteGoal(ctx, g.ID); !errors.As(err, new(NotFoundError)) {
		t.Fatalf("second DeleteGoal err=%v", err)
	}

	goals, err := svc.Goals(ctx)
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("goals=%d, want 0", len(goals))
	}
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testGoal(id string, created time.Time) Goal {
	return Goal{
		ID:           id,
		Title:        "Learn Go",
		Field:        "tech",
		Deadline:     "2027-06-01",
		HoursPerWeek: 14,
		SkillLevel:   "beginner",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func TestGoalRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo(openTestDB(t))
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	perDay := 2.5
	g := testGoal("g1", now)
	g.HoursPerDay = &perDay
	g.HasOtherCommitments = true
	if err := repo.Insert(ctx, g); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.Get(ctx, "g1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatalf("Get returned nil")
	}
	if got.Title != "Learn Go" || got.Field != "tech" || got.Deadline != "2027-06-01" {
		t.Fatalf("unexpected goal: %+v", got)
	}
	if got.HoursPerDay == nil || *got.HoursPerDay != 2.5 {
		t.Fatalf("HoursPerDay=%v, want 2.5", got.HoursPerDay)
	}
	if !got.HasOtherCommitments {
		t.Fatalf("HasOtherCommitments=false, want true")
	}
	if got.CalibratedSkillLevel != nil || got.SelectedApproachID != nil || got.PlanJSON != nil {
		t.Fatalf("expected nullable columns to be nil: %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("CreatedAt=%v, want %v", got.CreatedAt, now)
	}

	missing, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("Get missing returned %+v, want nil", missing)
	}
}

func TestGoalRepoUpdatesAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo(openTestDB(t))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b"} {
		if err := repo.Insert(ctx, testGoal(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Insert %s: %v", id, err)
		}
	}

	later := base.Add(48 * time.Hour)
	if err := repo.UpdateSelectedApproach(ctx, "a", "structured_part_time", later); err != nil {
		t.Fatalf("UpdateSelectedApproach: %v", err)
	}
	if err := repo.UpdateCalibration(ctx, "a", "intermediate", later); err != nil {
		t.Fatalf("UpdateCalibration: %v", err)
	}
	if err := repo.UpdatePlan(ctx, "a", `{"summary":"ok"}`, later); err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}

	list, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("ListAll order: %+v", list)
	}
	a := list[0]
	if a.SelectedApproachID == nil || *a.SelectedApproachID != "structured_part_time" {
		t.Fatalf("SelectedApproachID=%v", a.SelectedApproachID)
	}
	if a.CalibratedSkillLevel == nil || *a.CalibratedSkillLevel != "intermediate" {
		t.Fatalf("CalibratedSkillLevel=%v", a.CalibratedSkillLevel)
	}
	if a.PlanJSON == nil || *a.PlanJSON != `{"summary":"ok"}` {
		t.Fatalf("PlanJSON=%v", a.PlanJSON)
	}
	if !a.UpdatedAt.Equal(later) {
		t.Fatalf("UpdatedAt=%v, want %v", a.UpdatedAt, later)
	}
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repos := NewRepos(db)
	now := time.Now().UTC()

	if err := repos.Goals.Insert(ctx, testGoal("g1", now)); err != nil {
		t.Fatalf("Insert goal: %v", err)
	}
	if err := repos.Quiz.Insert(ctx, QuizResult{
		ID: "q1", GoalID: "g1", Field: "tech",
		Answers:         map[string]string{"tech_fundamentals": "basic"},
		CalibratedLevel: "beginner",
		CategoryScores:  map[string]float64{"fundamentals": 25},
		Confidence:      80,
		CreatedAt:       now,
	}); err != nil {
		t.Fatalf("Insert quiz: %v", err)
	}
	if err := repos.Evaluations.ReplaceForGoal(ctx, "g1", []Evaluation{{GoalID: "g1", ApproachID: "x", FitStatus: "good_fit", RiskLevel: "low", EvaluatedAt: now}}); err != nil {
		t.Fatalf("ReplaceForGoal: %v", err)
	}

	ok, err := repos.Goals.Delete(ctx, "g1")
	if err != nil || !ok {
		t.Fatalf("Delete ok=%v err=%v", ok, err)
	}
	n, err := repos.Quiz.CountForGoal(ctx, "g1")
	if err != nil {
		t.Fatalf("CountForGoal: %v", err)
	}
	if n != 0 {
		t.Fatalf("quiz results left after delete: %d", n)
	}
	evs, err := repos.Evaluations.ListForGoal(ctx, "g1")
	if err != nil {
		t.Fatalf("ListForGoal: %v", err)
	}
	if len(evs) != 0 {
		t.Fatalf("evaluations left after delete: %d", len(evs))
	}

	ok, err = repos.Goals.Delete(ctx, "g1")
	if err != nil || ok {
		t.Fatalf("second Delete ok=%v err=%v, want false,nil", ok, err)
	}
}

func TestQuizLatestForGoal(t *testing.T) {
	ctx := context.Background()
	repos := NewRepos(openTestDB(t))
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := repos.Goals.Insert(ctx, testGoal("g1", base)); err != nil {
		t.Fatalf("Insert goal: %v", err)
	}

	none, err := repos.Quiz.LatestForGoal(ctx, "g1")
	if err != nil || none != nil {
		t.Fatalf("LatestForGoal empty = %+v, %v", none, err)
	}

	for i, level := range []string{"beginner", "advanced"} {
		err := repos.Quiz.Insert(ctx, QuizResult{
			ID: level, GoalID: "g1", Field: "tech",
			Answers:         map[string]string{"q": level},
			TotalScore:      float64(10 * (i + 1)),
			CalibratedLevel: level,
			CategoryScores:  map[string]float64{"c": float64(i)},
			Confidence:      60 + i,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Insert quiz %d: %v", i, err)
		}
	}

	latest, err := repos.Quiz.LatestForGoal(ctx, "g1")
	if err != nil {
		t.Fatalf("LatestForGoal: %v", err)
	}
	if latest == nil || latest.CalibratedLevel != "advanced" || latest.Confidence != 61 {
		t.Fatalf("latest=%+v", latest)
	}
	if latest.Answers["q"] != "advanced" || latest.CategoryScores["c"] != 1 {
		t.Fatalf("decoded maps: %+v %+v", latest.Answers, latest.CategoryScores)
	}
}

func TestEvaluationsReplaceKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repos := NewRepos(openTestDB(t))
	now := time.Now().UTC()
	if err := repos.Goals.Insert(ctx, testGoal("g1", now)); err != nil {
		t.Fatalf("Insert goal: %v", err)
	}

	first := []Evaluation{{ApproachID: "a"}, {ApproachID: "b"}}
	second := []Evaluation{{ApproachID: "z"}, {ApproachID: "y"}, {ApproachID: "x"}}
	for _, evs := range [][]Evaluation{first, second} {
		if err := repos.Evaluations.ReplaceForGoal(ctx, "g1", evs); err != nil {
			t.Fatalf("ReplaceForGoal: %v", err)
		}
	}

	got, err := repos.Evaluations.ListForGoal(ctx, "g1")
	if err != nil {
		t.Fatalf("ListForGoal: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d, want 3", len(got))
	}
	for i, want := range []string{"z", "y", "x"} {
		if got[i].ApproachID != want {
			t.Fatalf("got[%d]=%s, want %s", i, got[i].ApproachID, want)
		}
	}
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	boom := errors.New("boom")

	err := WithTx(ctx, db, func(r Repos) error {
		if err := r.Goals.Insert(ctx, testGoal("g1", time.Now())); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx err=%v, want boom", err)
	}

	g, err := NewGoalRepo(db).Get(ctx, "g1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if g != nil {
		t.Fatalf("goal persisted despite rollback")
	}
}

func TestResolveDBPath(t *testing.T) {
	got, err := ResolveDBPath("  /tmp/x.db ")
	if err != nil || got != "/tmp/x.db" {
		t.Fatalf("ResolveDBPath override = %q, %v", got, err)
	}
	t.Setenv("HOME", "/home/tester")
	got, err = ResolveDBPath("")
	if err != nil {
		t.Fatalf("ResolveDBPath default: %v", err)
	}
	if got != filepath.Join("/home/tester", ".pathfy.db") {
		t.Fatalf("ResolveDBPath default = %q", got)
	}
}

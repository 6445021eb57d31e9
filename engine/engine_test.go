package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/filter"
	"github.com/rushteam/matchkit/rank"
)

func fixedNow() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

// stubModel 记录每次调用收到的特征行，并按 score 函数给分。
type stubModel struct {
	mu    sync.Mutex
	calls [][][]float64
	score func(rows [][]float64) ([]float64, error)
}

func (m *stubModel) Name() string    { return "stub" }
func (m *stubModel) Version() string { return "test" }

func (m *stubModel) PredictBatch(_ context.Context, rows [][]float64) ([]float64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, rows)
	m.mu.Unlock()
	return m.score(rows)
}

func constant(scores ...float64) func([][]float64) ([]float64, error) {
	return func(rows [][]float64) ([]float64, error) {
		out := make([]float64, len(rows))
		for i := range rows {
			out[i] = scores[i%len(scores)]
		}
		return out, nil
	}
}

func seeker() *core.Seeker {
	return &core.Seeker{
		ID:       "s1",
		Skills:   []string{"Go", "PostgreSQL"},
		Location: "Nairobi",
		Experience: []core.Experience{
			{Duration: "2019 - 2023"},
			{Duration: "sometime"},
		},
		Available: true,
	}
}

func poolJobs() []*core.Job {
	return []*core.Job{
		{ID: "j1", Skills: []string{"java"}, Location: "Nairobi"},
		{ID: "j2", Skills: []string{"golang"}, Location: "Nairobi"},
		{ID: "j3", Skills: []string{"figma"}, Location: "Nairobi"},
		{ID: "j4", Skills: []string{"postgres", "docker"}, Location: "Mombasa"},
		{ID: "j5", Skills: []string{"excel"}, Location: "Nairobi"},
	}
}

func ids(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecommendJobs_ModelOnlySeesPrefiltered(t *testing.T) {
	m := &stubModel{score: func(rows [][]float64) ([]float64, error) {
		// 按 skills_jaccard 给分，j2 更高
		out := make([]float64, len(rows))
		for i, r := range rows {
			out[i] = 0.5 + r[0]/2
		}
		return out, nil
	}}
	e := New(WithModel(m), WithClock(fixedNow))

	recs := e.RecommendJobsForSeeker(context.Background(), seeker(), poolJobs())

	if len(m.calls) != 1 {
		t.Fatalf("PredictBatch calls = %d, want 1", len(m.calls))
	}
	if got := len(m.calls[0]); got != 2 {
		t.Fatalf("model saw %d rows, want 2", got)
	}
	for _, row := range m.calls[0] {
		if len(row) != core.FeatureCount {
			t.Errorf("row has %d features", len(row))
		}
		if row[1] == 0 {
			t.Errorf("model received a row with no skill overlap: %v", row)
		}
	}
	if !equal(ids(recs), []string{"j2", "j4"}) {
		t.Errorf("recommendations = %v, want [j2 j4]", ids(recs))
	}
	for _, r := range recs {
		if r.Path != PathML {
			t.Errorf("path = %s, want %s", r.Path, PathML)
		}
		if r.Features != nil {
			t.Errorf("features should only be set with Explain")
		}
	}
}

func TestRecommendJobs_Fallback(t *testing.T) {
	boom := errors.New("model down")
	tests := []struct {
		name  string
		model core.ScoringModel
	}{
		{"nil model", nil},
		{"model error", &stubModel{score: func([][]float64) ([]float64, error) { return nil, boom }}},
		{"nan output", &stubModel{score: constant(math.NaN())}},
		{"short output", &stubModel{score: func([][]float64) ([]float64, error) { return []float64{0.9}, nil }}},
		{"below floor", &stubModel{score: constant(0.1)}},
		{"panic", &stubModel{score: func([][]float64) ([]float64, error) { panic("numeric") }}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.model != nil {
				opts = append(opts, WithModel(tt.model))
			}
			e := New(append(opts, WithClock(fixedNow))...)
			recs := e.RecommendJobsForSeeker(context.Background(), seeker(), poolJobs())
			if len(recs) == 0 {
				t.Fatalf("fallback returned no recommendations")
			}
			if recs[0].ID() != "j2" {
				t.Errorf("first = %s, want j2", recs[0].ID())
			}
			for _, r := range recs {
				if r.Path != PathRule {
					t.Errorf("path = %s, want %s", r.Path, PathRule)
				}
			}
		})
	}
}

func TestRecommendJobs_Relaxed(t *testing.T) {
	m := &stubModel{score: constant(0.4, 0.35)}
	e := New(WithModel(m), WithClock(fixedNow))

	recs := e.RecommendJobsForSeeker(context.Background(), seeker(), poolJobs())
	if !equal(ids(recs), []string{"j2", "j4"}) {
		t.Fatalf("recommendations = %v", ids(recs))
	}
	if recs[0].Path != PathMLRelaxed {
		t.Errorf("path = %s, want %s", recs[0].Path, PathMLRelaxed)
	}

	// 调高下限后不再放宽，转入规则匹配
	recs = e.RecommendJobsForSeeker(context.Background(), seeker(), poolJobs(), Floor(0.45))
	if len(recs) == 0 || recs[0].Path != PathRule {
		t.Errorf("expected rule fallback, got %+v", recs)
	}
}

func TestRecommendJobs_StableTies(t *testing.T) {
	jobs := []*core.Job{
		{ID: "a", Skills: []string{"go"}},
		{ID: "b", Skills: []string{"go"}},
		{ID: "c", Skills: []string{"go"}},
	}
	e := New(WithModel(&stubModel{score: constant(0.7)}), WithClock(fixedNow))
	recs := e.RecommendJobsForSeeker(context.Background(), seeker(), jobs)
	if !equal(ids(recs), []string{"a", "b", "c"}) {
		t.Errorf("tie order = %v, want [a b c]", ids(recs))
	}
}

func TestRecommendJobs_EmptyPrefilter(t *testing.T) {
	m := &stubModel{score: constant(0.9)}
	e := New(WithModel(m), WithClock(fixedNow))
	jobs := []*core.Job{{ID: "x", Skills: []string{"cobol"}}, {ID: "y", Skills: []string{"figma"}}}

	recs := e.RecommendJobsForSeeker(context.Background(), seeker(), jobs)
	if recs == nil || len(recs) != 0 {
		t.Errorf("recommendations = %v, want empty", recs)
	}
	if len(m.calls) != 0 {
		t.Errorf("model should not be called on an empty pool")
	}
}

// coldStartLogs 统计冷启动路由日志。
func coldStartLogs(logs *observer.ObservedLogs) int {
	return logs.FilterMessage("cold start anchor, using rule matcher").Len()
}

func TestRecommendJobs_ColdStart(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	m := &stubModel{score: constant(0.9)}
	e := New(WithModel(m), WithClock(fixedNow), WithLogger(zap.New(obs)))
	minimal := &core.Seeker{
		ID:                "cold",
		Education:         []core.Education{{Level: "Bachelor", Field: "Computer Science"}},
		PreferredJobTypes: []string{core.JobTypeFullTime},
		Available:         true,
	}

	recs := e.RecommendJobsForSeeker(context.Background(), minimal, poolJobs())
	if len(m.calls) != 0 {
		t.Errorf("cold start must not call the model")
	}
	if coldStartLogs(logs) != 1 {
		t.Errorf("cold start routing not logged")
	}
	// 没有技能的画像过不了技能门槛
	if recs == nil || len(recs) != 0 {
		t.Errorf("recommendations = %v, want empty", ids(recs))
	}
}

func TestRecommendCandidates_ColdStartJob(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	m := &stubModel{score: constant(0.9)}
	e := New(WithModel(m), WithClock(fixedNow), WithLogger(zap.New(obs)))
	seekers := []*core.Seeker{
		{ID: "s1", Skills: []string{"python"}, Location: "Arusha", Available: true},
	}

	tests := []struct {
		name string
		job  *core.Job
		cold bool
	}{
		{"no skills short description", &core.Job{ID: "j1", Description: "  Hiring  "}, true},
		{"no skills long description", &core.Job{ID: "j2", Description: "Backend engineer for payments"}, false},
		{"skills", &core.Job{ID: "j3", Skills: []string{"python"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, calls := coldStartLogs(logs), len(m.calls)
			recs := e.RecommendCandidatesForJob(context.Background(), tt.job, seekers)
			routed := coldStartLogs(logs) - before
			if tt.cold {
				if routed != 1 || len(m.calls) != calls {
					t.Errorf("cold start: logs=%d model calls=%d", routed, len(m.calls)-calls)
				}
				if len(recs) != 0 {
					t.Errorf("recommendations = %v, want empty", ids(recs))
				}
				return
			}
			if routed != 0 {
				t.Errorf("job %s routed to cold start", tt.job.ID)
			}
			for _, r := range recs {
				if r.Path == PathRuleColdStart {
					t.Errorf("path = %s", r.Path)
				}
			}
		})
	}
}

func TestFailureKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{rank.ErrNoModel, "unavailable"},
		{rank.ErrMissingFeatures, "invalid_input"},
		{fmt.Errorf("rank.model: %w", rank.ErrMalformedPredictions), "malformed_output"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		if got := failureKind(tt.err); got != tt.want {
			t.Errorf("failureKind(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestRecommendJobs_Explain(t *testing.T) {
	e := New(WithModel(&stubModel{score: constant(0.8)}), WithClock(fixedNow))
	recs := e.RecommendJobsForSeeker(context.Background(), seeker(), poolJobs(), Explain(), TopN(1))
	if len(recs) != 1 {
		t.Fatalf("len = %d, want 1", len(recs))
	}
	r := recs[0]
	if len(r.Features) != core.FeatureCount {
		t.Fatalf("features = %v", r.Features)
	}
	if r.Features[core.FeatureSkillsOverlap] != 1 {
		t.Errorf("skills_overlap = %v, want 1", r.Features[core.FeatureSkillsOverlap])
	}
	if r.Features[core.FeatureExperienceYears] != 4 {
		t.Errorf("experience_years = %v, want 4", r.Features[core.FeatureExperienceYears])
	}
	if r.Labels["rank_model"] != "stub" {
		t.Errorf("labels = %v", r.Labels)
	}

	// 规则路径也能给出特征
	rule := New(WithClock(fixedNow)).RecommendJobsForSeeker(context.Background(), seeker(), poolJobs(), Explain())
	if len(rule) == 0 || len(rule[0].Features) != core.FeatureCount {
		t.Errorf("rule explain = %+v", rule)
	}
}

func TestRecommendCandidates(t *testing.T) {
	job := &core.Job{ID: "j1", Skills: []string{"python", "sql"}, Location: "Arusha", Description: "Backend engineer"}
	seekers := []*core.Seeker{
		{ID: "busy", Skills: []string{"python"}, Location: "Arusha", Available: false},
		{ID: "s1", Skills: []string{"python"}, Location: "Arusha", Available: true},
		{ID: "s2", Skills: []string{"sql", "python"}, Location: "Arusha", Available: true},
	}

	m := &stubModel{score: constant(0.3, 0.6)}
	e := New(WithModel(m), WithClock(fixedNow))
	recs := e.RecommendCandidatesForJob(context.Background(), job, seekers)
	if len(m.calls) != 1 || len(m.calls[0]) != 2 {
		t.Fatalf("model calls = %v", m.calls)
	}
	if !equal(ids(recs), []string{"s2", "s1"}) {
		t.Errorf("recommendations = %v, want [s2 s1]", ids(recs))
	}
	if got := Seekers(recs); len(got) != 2 || got[0].ID != "s2" {
		t.Errorf("Seekers() = %v", got)
	}

	fallback := New(WithClock(fixedNow)).RecommendCandidatesForJob(context.Background(), job, seekers)
	for _, r := range fallback {
		if r.ID() == "busy" {
			t.Errorf("unavailable seeker recommended")
		}
	}
}

func TestRecommend_PoolFilters(t *testing.T) {
	e := New(
		WithModel(&stubModel{score: constant(0.9)}),
		WithClock(fixedNow),
		WithFilters(filter.NewExcludeFilter([]string{"j2"}, nil, "")),
	)
	recs := e.RecommendJobsForSeeker(context.Background(), seeker(), poolJobs())
	if !equal(ids(recs), []string{"j4"}) {
		t.Errorf("recommendations = %v, want [j4]", ids(recs))
	}
}

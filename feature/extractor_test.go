package feature

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rushteam/matchkit/core"
)

func fixedClock() time.Time {
	return time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
}

func TestExtractor_Extract(t *testing.T) {
	salary := int64(1_000_000)
	jobMin := int64(900_000)
	rating := 4.5
	seeker := &core.Seeker{
		Skills:            []string{"Python", "SQL"},
		Education:         []core.Education{{Level: "Bachelor", Field: "Computer Science"}},
		Experience:        []core.Experience{{Role: "dev", Duration: "2021-present"}},
		PreferredJobTypes: []string{"FULL_TIME"},
		Location:          "Arusha",
		SalaryExpectation: &salary,
		Rating:            &rating,
		Available:         true,
	}
	job := &core.Job{
		Skills:        []string{"python", "java"},
		Location:      "Arusha",
		JobType:       "PART_TIME",
		SalaryMin:     &jobMin,
		MinExperience: 2,
	}

	v := NewExtractor(WithClock(fixedClock)).Extract(seeker, job)

	want := map[string]float64{
		core.FeatureSkillsJaccard:         1.0 / 3.0,
		core.FeatureSkillsOverlap:         1,
		core.FeatureEducationMatch:        1,
		core.FeatureExperienceYears:       4,
		core.FeatureJobExperienceRequired: 2,
		core.FeatureExperienceGap:         2,
		core.FeaturePreferredJobTypeMatch: 0.5,
		core.FeatureLocationMatch:         1,
		core.FeatureSalaryWithinRange:     1,
		core.FeatureSeekerRating:          4.5,
		core.FeatureIsAvailable:           1,
	}
	for name, w := range want {
		got, ok := v.Get(name)
		if !ok {
			t.Fatalf("missing feature %q", name)
		}
		if math.Abs(got-w) > 1e-9 {
			t.Errorf("feature %q = %v, want %v", name, got, w)
		}
	}
}

func TestExtractor_NilSides(t *testing.T) {
	v := NewExtractor().Extract(nil, nil)
	if v[0] != 0 || v[1] != 0 {
		t.Errorf("skills features should be 0, got %v", v)
	}
	// 无要求时学历得 1，地点缺失得 0.5
	if got, _ := v.Get(core.FeatureEducationMatch); got != 1 {
		t.Errorf("education_match = %v, want 1", got)
	}
	if got, _ := v.Get(core.FeatureLocationMatch); got != 0.5 {
		t.Errorf("location_match = %v, want 0.5", got)
	}
}

func TestEnrichNode_Process(t *testing.T) {
	anchor := &core.Job{ID: "j1", Skills: []string{"go"}}
	seekers := []*core.Seeker{
		{ID: "s1", Skills: []string{"golang"}, Available: true},
		{ID: "s2", Skills: []string{"rust"}},
		{ID: "s3", Skills: []string{"go", "rust"}, Available: true},
	}
	rctx := &core.RecommendContext{Direction: core.DirectionCandidates, Job: anchor}
	items := core.SeekerItems(seekers)

	node := &EnrichNode{Extractor: NewExtractor(WithClock(fixedClock)), Workers: 2}
	out, err := node.Process(context.Background(), rctx, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	wantOverlap := []float64{1, 0, 1}
	for i, it := range out {
		if it.ID != seekers[i].ID {
			t.Errorf("out[%d].ID = %s, want %s", i, it.ID, seekers[i].ID)
		}
		if it.Vector == nil {
			t.Fatalf("out[%d].Vector is nil", i)
		}
		if got := it.Vector[1]; got != wantOverlap[i] {
			t.Errorf("out[%d] skills_overlap = %v, want %v", i, got, wantOverlap[i])
		}
	}
	if out[1].Vector[10] != 0 {
		t.Errorf("unavailable seeker should have is_available = 0")
	}
}

func TestBuildBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rctx := &core.RecommendContext{Direction: core.DirectionJobs, Seeker: &core.Seeker{}}
	items := core.JobItems([]*core.Job{{ID: "a"}, {ID: "b"}})
	if err := BuildBatch(ctx, NewExtractor(), rctx, items, 1); err == nil {
		t.Errorf("BuildBatch() should fail on a canceled context")
	}
}

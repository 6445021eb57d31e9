package dsl

import (
	"testing"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pkg/utils"
)

func TestProgram_Eval(t *testing.T) {
	salaryMax := int64(800000)
	rating := 4.0
	seeker := &core.Seeker{ID: "s1", Skills: []string{"go", "sql"}, Rating: &rating, Available: true}
	job := &core.Job{ID: "j1", JobType: "INTERNSHIP", SalaryMax: &salaryMax, MinExperience: 2}
	rctx := &core.RecommendContext{Direction: core.DirectionJobs, Seeker: seeker}
	item := core.NewJobItem(job)
	item.Score = 0.8
	item.PutLabel("path", utils.Label{Value: "ml", Source: "engine"})

	tests := []struct {
		expr string
		want bool
	}{
		{`job.job_type != "INTERNSHIP"`, false},
		{`seeker.rating >= 3.0 && "go" in seeker.skills`, true},
		{`job.salary_max != null && job.salary_max >= 500000`, true},
		{`job.salary_min == null`, true},
		{`score > 0.5 && label.path == "ml"`, true},
		{`job.min_experience <= 1.0`, false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := Compile(tt.expr)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			got, err := p.Eval(rctx, item)
			if err != nil {
				t.Fatalf("Eval() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	for _, expr := range []string{`job.job_type ==`, `score + 1.0`} {
		if _, err := Compile(expr); err == nil {
			t.Errorf("Compile(%q) should fail", expr)
		}
	}
}


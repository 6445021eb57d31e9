package match

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/rushteam/matchkit/core"
)

const eps = 1e-9

func int64p(v int64) *int64       { return &v }
func float64p(v float64) *float64 { return &v }

func TestSkills(t *testing.T) {
	m := Skills([]string{"python", "sql"}, []string{"python", "java"})
	if !reflect.DeepEqual(m.Matched, []string{"python"}) {
		t.Fatalf("Matched = %v", m.Matched)
	}
	want := 0.4*(1.0/3.0) + 0.6*(1.0/2.0)
	if math.Abs(m.Score-want) > eps {
		t.Errorf("Score = %v, want %v", m.Score, want)
	}

	tests := []struct {
		name   string
		seeker []string
		job    []string
	}{
		{"disjoint", []string{"python"}, []string{"java"}},
		{"empty seeker", nil, []string{"java"}},
		{"empty job", []string{"python"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Skills(tt.seeker, tt.job)
			if !got.Empty() || got.Score != 0 {
				t.Errorf("Skills() = %+v, want empty", got)
			}
		})
	}

	synonyms := Skills([]string{"Golang", "Postgres"}, []string{"go", "postgresql"})
	if math.Abs(synonyms.Score-1.0) > eps {
		t.Errorf("synonym match Score = %v, want 1", synonyms.Score)
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name     string
		seeker   string
		job      string
		relocate bool
		want     float64
	}{
		{"missing seeker", "", "Arusha", false, 0.5},
		{"missing job", "Arusha", " ", true, 0.5},
		{"exact", "  Dar es  Salaam", "dar es salaam ", false, 1.0},
		{"contains", "Dar", "Dar es Salaam", false, 0.9},
		{"relocate", "Arusha", "Dodoma", true, 0.7},
		{"no match", "Arusha", "Dodoma", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Location(tt.seeker, tt.job, tt.relocate); got != tt.want {
				t.Errorf("Location() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJobType(t *testing.T) {
	tests := []struct {
		name  string
		prefs []string
		job   string
		want  float64
	}{
		{"unspecified job type", []string{"FULL_TIME"}, "", 0},
		{"no preference", nil, "CONTRACT", 1.0},
		{"direct", []string{"full-time"}, "FULL_TIME", 1.0},
		{"full time to part time", []string{"FULL_TIME"}, "PART_TIME", 0.5},
		{"part time to temporary", []string{"PART_TIME"}, "Temporary", 0.7},
		{"best of prefs", []string{"CONTRACT", "PART_TIME"}, "TEMPORARY", 0.7},
		{"unrelated", []string{"INTERNSHIP"}, "CONTRACT", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JobType(tt.prefs, tt.job); got != tt.want {
				t.Errorf("JobType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSalary(t *testing.T) {
	tests := []struct {
		name           string
		seeker, lo, hi *int64
		want           float64
	}{
		{"within tolerance of min, no max", int64p(1_000_000), int64p(900_000), nil, 1.0},
		{"below max", int64p(2_000_000), int64p(500_000), int64p(2_500_000), 1.0},
		{"too high", int64p(2_000_000), int64p(900_000), int64p(1_000_000), 0},
		{"seeker missing", nil, int64p(900_000), nil, 0.5},
		{"job missing", int64p(1), nil, nil, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Salary(tt.seeker, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Salary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEducation(t *testing.T) {
	bscCS := []core.Education{{Level: "Bachelor", Field: "Computer Science"}}
	tests := []struct {
		name string
		edu  []core.Education
		reqs []core.Requirement
		want float64
	}{
		{"no requirements", nil, nil, 1.0},
		{
			"structured exact",
			bscCS,
			[]core.Requirement{{Type: "education", Level: "Bachelor", Field: "computer science"}},
			1.0,
		},
		{
			"structured partial level and field",
			[]core.Education{{Level: "Diploma", Field: "Computer"}},
			[]core.Requirement{{Type: "education", Level: "Bachelor", Field: "Computer Science"}},
			0.4*(3.0/4.0) + 0.6*0.8,
		},
		{
			"structured averaged",
			bscCS,
			[]core.Requirement{
				{Type: "education", Level: "Bachelor", Field: "Computer Science"},
				{Type: "education", Level: "PhD", Field: "Medicine"},
			},
			(1.0 + 0.4*(4.0/6.0)) / 2,
		},
		{
			"structured unusable",
			bscCS,
			[]core.Requirement{{Type: "education", Level: "Bachelor"}},
			0.5,
		},
		{
			"legacy level and field",
			bscCS,
			[]core.Requirement{{Text: "Bachelor degree in Computer Science"}},
			1.0,
		},
		{
			"legacy field miss",
			[]core.Education{{Level: "Masters", Field: "History"}},
			[]core.Requirement{{Text: "Degree in Finance"}},
			0.5,
		},
		{
			"legacy nothing detected",
			nil,
			[]core.Requirement{{Text: "Good attitude"}},
			1.0,
		},
		{
			"legacy level from type",
			[]core.Education{{Type: "Diploma in Business", Field: "business"}},
			[]core.Requirement{{Text: "Bachelor in Business"}},
			0.5*(3.0/4.0) + 0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Education(tt.edu, tt.reqs); math.Abs(got-tt.want) > eps {
				t.Errorf("Education() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEducationRank(t *testing.T) {
	tests := map[string]int{
		"":                   RankNone,
		"No education":       RankNone,
		"Ordinary Levels":    RankOrdinary,
		"Certificate":        RankCertificate,
		"Diploma":            RankDiploma,
		"Bachelor":           RankBachelor,
		"Degree":             RankBachelor,
		"Master degree":      RankMasters,
		"Masters":            RankMasters,
		"PhD":                RankDoctorate,
		"Doctorate of Music": RankDoctorate,
	}
	for in, want := range tests {
		if got := EducationRank(in); got != want {
			t.Errorf("EducationRank(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseExperience(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []core.Experience{
		{Role: "a", Years: float64p(1.5)},
		{Role: "b", Duration: "2019-2022"},
		{Role: "c", Duration: "Jan 2023 - present"},
		{Role: "d", Duration: "2.5 years"},
		{Role: "e", Duration: "a while"},
		{Role: "f", Duration: "2022-2020"},
		{Role: "g"},
	}
	years, failures := ParseExperience(entries, now)
	// 1.5 + 3 + 2 + 2.5 + 0
	if years != 9.0 {
		t.Errorf("years = %v, want 9", years)
	}
	if len(failures) != 1 || failures[0].Index != 4 {
		t.Fatalf("failures = %+v, want one at index 4", failures)
	}
	if failures[0].Error() == "" {
		t.Errorf("ParseFailure.Error() should not be empty")
	}
	if got := ExperienceYears(nil, now); got != 0 {
		t.Errorf("ExperienceYears(nil) = %v", got)
	}
}

func TestExperienceGate(t *testing.T) {
	if !MeetsExperience(0, 0) {
		t.Errorf("no requirement should pass")
	}
	if !MeetsExperience(3, 5) {
		t.Errorf("3 of 5 years is within the 60%% band")
	}
	if MeetsExperience(2.9, 5) {
		t.Errorf("2.9 of 5 years should fail")
	}
	if got := ExperienceCredit(2, 4); got != 0.5 {
		t.Errorf("ExperienceCredit(2,4) = %v", got)
	}
	if got := ExperienceCredit(6, 4); got != 1 {
		t.Errorf("ExperienceCredit(6,4) = %v", got)
	}
}

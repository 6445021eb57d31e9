package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/matchkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("seeker", cel.DynType),
			cel.Variable("job", cel.DynType),
			cel.Variable("features", cel.MapType(cel.StringType, cel.DoubleType)),
			cel.Variable("score", cel.DoubleType),
			cel.Variable("label", cel.DynType),
			cel.Variable("params", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Program 是编译后的布尔表达式，可被并发求值。
//
// 表达式使用 CEL (Common Expression Language) 语法，可用变量：
//   - seeker：id、skills、location、preferred_job_types、willing_to_relocate、
//     salary_expectation、rating、available
//   - job：id、title、skills、location、job_type、salary_min、salary_max、
//     min_experience、experience_level、deadline
//   - features：特征名 → 特征值（尚未抽取时为空）
//   - score：当前分数
//   - label：标签名 → 标签值
//   - params：请求参数
//
// 示例：
//   - `job.job_type != "INTERNSHIP"`
//   - `seeker.rating >= 3.0 && "go" in seeker.skills`
//   - `job.salary_max == null || job.salary_max >= 500000`
type Program struct {
	prg cel.Program
}

// Compile 编译表达式。表达式必须返回 bool。
func Compile(expr string) (*Program, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}
	switch out := ast.OutputType().String(); out {
	case "bool", "dyn":
	default:
		return nil, fmt.Errorf("expression must return bool, got %s", out)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Program{prg: prg}, nil
}

// Eval 以 (rctx, item) 为输入求值。
func (p *Program) Eval(rctx *core.RecommendContext, item *core.Item) (bool, error) {
	out, _, err := p.prg.Eval(buildInput(rctx, item))
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

func buildInput(rctx *core.RecommendContext, item *core.Item) map[string]any {
	var seeker *core.Seeker
	var job *core.Job
	if rctx != nil {
		seeker, job = rctx.Pair(item)
	}

	features := map[string]float64{}
	score := 0.0
	label := map[string]any{}
	if item != nil {
		if f := item.Features(); f != nil {
			features = f
		}
		score = item.Score
		for k, v := range item.Labels {
			label[k] = v.Value
		}
	}

	params := map[string]any{}
	if rctx != nil && rctx.Params != nil {
		params = rctx.Params
	}

	return map[string]any{
		"seeker":   seekerInput(seeker),
		"job":      jobInput(job),
		"features": features,
		"score":    score,
		"label":    label,
		"params":   params,
	}
}

func seekerInput(s *core.Seeker) map[string]any {
	if s == nil {
		return map[string]any{}
	}
	return map[string]any{
		"id":                  s.ID,
		"skills":              nonNil(s.Skills),
		"location":            s.Location,
		"preferred_job_types": nonNil(s.PreferredJobTypes),
		"willing_to_relocate": s.WillingToRelocate,
		"salary_expectation":  optionalInt(s.SalaryExpectation),
		"rating":              s.RatingValue(),
		"available":           s.Available,
	}
}

func jobInput(j *core.Job) map[string]any {
	if j == nil {
		return map[string]any{}
	}
	deadline := ""
	if !j.Deadline.IsZero() {
		deadline = j.Deadline.Format("2006-01-02")
	}
	return map[string]any{
		"id":               j.ID,
		"title":            j.Title,
		"skills":           nonNil(j.Skills),
		"location":         j.Location,
		"job_type":         j.JobType,
		"salary_min":       optionalInt(j.SalaryMin),
		"salary_max":       optionalInt(j.SalaryMax),
		"min_experience":   j.MinExperience,
		"experience_level": j.ExperienceLevel,
		"deadline":         deadline,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func optionalInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

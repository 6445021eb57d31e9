package rank

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rushteam/matchkit/core"
)

func vectorItems(ids ...string) []*core.Item {
	items := make([]*core.Item, len(ids))
	for i, id := range ids {
		it := core.NewJobItem(&core.Job{ID: id})
		var v core.FeatureVector
		v[0] = float64(i)
		it.Vector = &v
		items[i] = it
	}
	return items
}

func fixed(scores ...float64) core.ScoringModelFunc {
	return func(_ context.Context, rows [][]float64) ([]float64, error) {
		return scores, nil
	}
}

func ids(items []*core.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestModelNode_SortsStable(t *testing.T) {
	calls := 0
	m := core.ScoringModelFunc(func(_ context.Context, rows [][]float64) ([]float64, error) {
		calls++
		if len(rows) != 4 {
			t.Fatalf("rows = %d, want 4", len(rows))
		}
		return []float64{0.4, 0.9, 0.4, 0.7}, nil
	})
	n := &ModelNode{Model: m}
	out, err := n.Process(context.Background(), &core.RecommendContext{}, vectorItems("a", "b", "c", "d"))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("PredictBatch calls = %d, want 1", calls)
	}
	want := []string{"b", "d", "a", "c"}
	got := ids(out)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if lbl, ok := out[0].Labels["rank_model"]; !ok || lbl.Value != "func" {
		t.Errorf("rank_model label = %+v", lbl)
	}
}

func TestModelNode_Errors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name  string
		model core.ScoringModel
		want  error
	}{
		{"nil model", nil, ErrNoModel},
		{"model error", core.ScoringModelFunc(func(context.Context, [][]float64) ([]float64, error) { return nil, boom }), boom},
		{"short output", fixed(0.5), ErrMalformedPredictions},
		{"nan", fixed(0.5, math.NaN()), ErrMalformedPredictions},
		{"out of range", fixed(0.5, 1.2), ErrMalformedPredictions},
		{"negative", fixed(-0.1, 0.5), ErrMalformedPredictions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &ModelNode{Model: tt.model}
			_, err := n.Process(context.Background(), &core.RecommendContext{}, vectorItems("a", "b"))
			if !errors.Is(err, tt.want) {
				t.Errorf("Process() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestModelNode_MissingVector(t *testing.T) {
	items := []*core.Item{core.NewJobItem(&core.Job{ID: "x"})}
	_, err := (&ModelNode{Model: fixed(0.5)}).Process(context.Background(), &core.RecommendContext{}, items)
	if !errors.Is(err, ErrMissingFeatures) {
		t.Errorf("Process() error = %v, want ErrMissingFeatures", err)
	}
}

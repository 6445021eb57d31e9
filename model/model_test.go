package model

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/matchkit/core"
)

func artifact(t *testing.T, names []string, weights []float64) []byte {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"version":       "v1",
		"feature_names": names,
		"bias":          -1.0,
		"weights":       weights,
	})
	if err != nil {
		t.Fatalf("marshal artifact: %v", err)
	}
	return data
}

func unitWeights() []float64 {
	w := make([]float64, core.FeatureCount)
	w[0] = 2.0
	return w
}

func TestLoadLRModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, artifact(t, core.FeatureNames(), unitWeights()), 0o600); err != nil {
		t.Fatal(err)
	}
	m, err := LoadLRModel(path)
	if err != nil {
		t.Fatalf("LoadLRModel() error = %v", err)
	}
	if m.Version() != "v1" || m.Name() != TypeLR {
		t.Errorf("Name/Version = %s/%s", m.Name(), m.Version())
	}

	rows := [][]float64{make([]float64, core.FeatureCount), make([]float64, core.FeatureCount)}
	rows[1][0] = 0.5
	got, err := m.PredictBatch(context.Background(), rows)
	if err != nil {
		t.Fatalf("PredictBatch() error = %v", err)
	}
	want0 := 1 / (1 + math.Exp(1.0))
	if math.Abs(got[0]-want0) > 1e-12 || math.Abs(got[1]-0.5) > 1e-12 {
		t.Errorf("PredictBatch() = %v", got)
	}

	if _, err := m.PredictBatch(context.Background(), [][]float64{{1, 2}}); !core.IsInvalidInput(err) {
		t.Errorf("short row should be invalid input, got %v", err)
	}
}

func TestParseLRModel_Errors(t *testing.T) {
	reordered := core.FeatureNames()
	reordered[0], reordered[1] = reordered[1], reordered[0]

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"not json", []byte("{"), ErrMalformedArtifact},
		{"feature order", artifact(t, reordered, unitWeights()), ErrFeatureOrder},
		{"missing feature", artifact(t, core.FeatureNames()[:5], unitWeights()), ErrFeatureOrder},
		{"weight count", artifact(t, core.FeatureNames(), []float64{1}), ErrMalformedArtifact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLRModel(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseLRModel() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRPCModel_PredictBatch(t *testing.T) {
	var gotNames []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FeatureNames []string    `json:"feature_names"`
			Instances    [][]float64 `json:"instances"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotNames = req.FeatureNames
		scores := make([]float64, len(req.Instances))
		for i, row := range req.Instances {
			scores[i] = row[0]
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"scores": scores, "model_version": "cb-7"})
	}))
	defer srv.Close()

	m := NewRPCModel("catboost", srv.URL, 0)
	rows := [][]float64{make([]float64, core.FeatureCount), make([]float64, core.FeatureCount)}
	rows[0][0], rows[1][0] = 0.25, 0.75
	got, err := m.PredictBatch(context.Background(), rows)
	if err != nil {
		t.Fatalf("PredictBatch() error = %v", err)
	}
	if len(got) != 2 || got[0] != 0.25 || got[1] != 0.75 {
		t.Errorf("PredictBatch() = %v", got)
	}
	if len(gotNames) != core.FeatureCount || gotNames[0] != core.FeatureSkillsJaccard {
		t.Errorf("feature_names sent = %v", gotNames)
	}
	// 响应中的额外字段不改变模型
	if m.Version() != srv.URL {
		t.Errorf("Version() = %q, want %q", m.Version(), srv.URL)
	}
}

func TestRPCModel_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewRPCModel("rpc", srv.URL, 0).PredictBatch(context.Background(), [][]float64{make([]float64, core.FeatureCount)})
	if !core.IsUnavailable(err) {
		t.Errorf("error = %v, want unavailable", err)
	}
}

func TestOpen(t *testing.T) {
	m, err := Open(Config{Type: TypeNone})
	if err != nil || m != nil {
		t.Errorf("Open(none) = %v, %v", m, err)
	}
	if _, err := Open(Config{Type: TypeLR}); err == nil {
		t.Errorf("Open(lr) without path should fail")
	}
	if _, err := Open(Config{Type: "catboost"}); err == nil {
		t.Errorf("Open(unknown) should fail")
	}
	m, err = Open(Config{Type: TypeRPC, Endpoint: "http://localhost:1/predict"})
	if err != nil || m.Name() != TypeRPC {
		t.Errorf("Open(rpc) = %v, %v", m, err)
	}
}

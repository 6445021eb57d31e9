package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rushteam/matchkit/config"
	"github.com/rushteam/matchkit/repository"
)

func TestOpenRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	content := "seekers:\n  - id: s1\n    skills: [go]\njobs:\n  - id: j1\n    skills: [golang]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	repo, err := openRepository(context.Background(), config.Repository{Type: config.RepositoryFile, Path: path})
	if err != nil {
		t.Fatalf("openRepository() error = %v", err)
	}
	jobs, err := repo.ListJobs(context.Background())
	if err != nil || len(jobs) != 1 {
		t.Errorf("ListJobs() = %v, %v", jobs, err)
	}

	if _, err := openRepository(context.Background(), config.Repository{Type: config.RepositoryFile, Path: path + ".missing"}); err == nil {
		t.Errorf("missing snapshot should fail")
	}
}

func TestLoadError(t *testing.T) {
	mem, err := repository.ParseSnapshot([]byte("seekers:\n  - id: s1\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, notFound := mem.GetSeeker(context.Background(), "nope")

	tests := []struct {
		name  string
		err   error
		level zapcore.Level
	}{
		{"missing anchor", notFound, zap.WarnLevel},
		{"backend failure", errors.New("connection refused"), zap.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, logs := observer.New(zap.DebugLevel)
			got := loadError(zap.New(obs), "seeker_id", "nope", tt.err)
			if !errors.Is(got, tt.err) {
				t.Errorf("loadError() = %v, want %v", got, tt.err)
			}
			entries := logs.All()
			if len(entries) != 1 || entries[0].Level != tt.level {
				t.Fatalf("logs = %+v, want one %s entry", entries, tt.level)
			}
			if entries[0].ContextMap()["seeker_id"] != "nope" {
				t.Errorf("fields = %v", entries[0].ContextMap())
			}
		})
	}
}

// Package repository 提供 core.Repository 的实现：内存快照、Postgres 与带缓存的装饰器。
package repository

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/matchkit/core"
)

// Memory 是内存仓储，保持输入顺序。构造后只读，可被并发使用。
type Memory struct {
	seekers    []*core.Seeker
	jobs       []*core.Job
	seekerByID map[string]*core.Seeker
	jobByID    map[string]*core.Job
}

// NewMemory 创建内存仓储，nil 与重复 ID 被丢弃（保留先出现的）。
func NewMemory(seekers []*core.Seeker, jobs []*core.Job) *Memory {
	m := &Memory{
		seekerByID: make(map[string]*core.Seeker, len(seekers)),
		jobByID:    make(map[string]*core.Job, len(jobs)),
	}
	for _, s := range seekers {
		if s == nil {
			continue
		}
		if _, dup := m.seekerByID[s.ID]; dup {
			continue
		}
		m.seekerByID[s.ID] = s
		m.seekers = append(m.seekers, s)
	}
	for _, j := range jobs {
		if j == nil {
			continue
		}
		if _, dup := m.jobByID[j.ID]; dup {
			continue
		}
		m.jobByID[j.ID] = j
		m.jobs = append(m.jobs, j)
	}
	return m
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) ListSeekers(_ context.Context) ([]*core.Seeker, error) {
	out := make([]*core.Seeker, len(m.seekers))
	copy(out, m.seekers)
	return out, nil
}

func (m *Memory) ListJobs(_ context.Context) ([]*core.Job, error) {
	out := make([]*core.Job, len(m.jobs))
	copy(out, m.jobs)
	return out, nil
}

func (m *Memory) GetSeeker(_ context.Context, id string) (*core.Seeker, error) {
	s, ok := m.seekerByID[id]
	if !ok {
		return nil, fmt.Errorf("seeker %q: %w", id, core.ErrSeekerNotFound)
	}
	return s, nil
}

func (m *Memory) GetJob(_ context.Context, id string) (*core.Job, error) {
	j, ok := m.jobByID[id]
	if !ok {
		return nil, fmt.Errorf("job %q: %w", id, core.ErrJobNotFound)
	}
	return j, nil
}

// snapshot 是快照文件的结构：
//
//	seekers:
//	  - id: s1
//	    skills: [go, postgres]
//	jobs:
//	  - id: j1
//	    skills: [golang]
type snapshot struct {
	Seekers []map[string]any `yaml:"seekers"`
	Jobs    []map[string]any `yaml:"jobs"`
}

// LoadSnapshotFile 从 YAML（或 JSON）快照文件加载内存仓储。
func LoadSnapshotFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot 解析快照内容，每条记录经 core.SeekerFromRecord / core.JobFromRecord 转换。
func ParseSnapshot(data []byte) (*Memory, error) {
	var raw snapshot
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	seekers := make([]*core.Seeker, 0, len(raw.Seekers))
	for _, rec := range raw.Seekers {
		seekers = append(seekers, core.SeekerFromRecord(rec))
	}
	jobs := make([]*core.Job, 0, len(raw.Jobs))
	for _, rec := range raw.Jobs {
		jobs = append(jobs, core.JobFromRecord(rec))
	}
	return NewMemory(seekers, jobs), nil
}

var _ core.Repository = (*Memory)(nil)

package core

import "github.com/rushteam/matchkit/pkg/utils"

// Item 是推荐链路中的统一承载结构：候选实体、分数、特征、元信息、标签。
// 一个 Item 只承载一种实体：推荐职位时为 Job，推荐候选人时为 Seeker。
// Labels 用于解释与策略驱动；Score 用于排序决策。
type Item struct {
	ID     string
	Score  float64
	Seeker *Seeker
	Job    *Job

	// Vector 为特征向量，特征抽取后写入；nil 表示尚未抽取
	Vector *FeatureVector

	Meta   map[string]any
	Labels map[string]utils.Label
}

// NewJobItem 以职位为候选实体创建 Item。
func NewJobItem(j *Job) *Item {
	it := newItem()
	it.Job = j
	if j != nil {
		it.ID = j.ID
	}
	return it
}

// NewSeekerItem 以求职者为候选实体创建 Item。
func NewSeekerItem(s *Seeker) *Item {
	it := newItem()
	it.Seeker = s
	if s != nil {
		it.ID = s.ID
	}
	return it
}

func newItem() *Item {
	return &Item{
		Meta:   make(map[string]any),
		Labels: make(map[string]utils.Label),
	}
}

// Features 返回以特征名为 key 的特征值；尚未抽取时返回 nil。
func (it *Item) Features() map[string]float64 {
	if it == nil || it.Vector == nil {
		return nil
	}
	return it.Vector.Map()
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}

// JobItems 把职位列表包装为 Item（保持输入顺序）。
func JobItems(jobs []*Job) []*Item {
	out := make([]*Item, 0, len(jobs))
	for _, j := range jobs {
		if j == nil {
			continue
		}
		out = append(out, NewJobItem(j))
	}
	return out
}

// SeekerItems 把求职者列表包装为 Item（保持输入顺序）。
func SeekerItems(seekers []*Seeker) []*Item {
	out := make([]*Item, 0, len(seekers))
	for _, s := range seekers {
		if s == nil {
			continue
		}
		out = append(out, NewSeekerItem(s))
	}
	return out
}

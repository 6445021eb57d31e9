// Package skill 把自由文本技能规范化为受控词表。
package skill

import "strings"

// Normalizer 持有变体 → 规范技能的只读查找表，构造后可被并发使用。
type Normalizer struct {
	lookup map[string]string
}

var defaultNormalizer = NewNormalizer()

// NewNormalizer 基于内置同义词表构造 Normalizer。
// extra 为附加分组（canonical → variants），在内置表之后生效。
func NewNormalizer(extra ...map[string][]string) *Normalizer {
	n := &Normalizer{lookup: make(map[string]string, 512)}
	for _, g := range synonymTable {
		n.add(g.canonical, g.variants)
	}
	for _, m := range extra {
		for canonical, variants := range m {
			n.add(strings.ToLower(strings.TrimSpace(canonical)), variants)
		}
	}
	// 规范名必须映射到自身，保证 Normalize 幂等
	for _, g := range synonymTable {
		n.lookup[g.canonical] = g.canonical
	}
	for _, m := range extra {
		for canonical := range m {
			c := strings.ToLower(strings.TrimSpace(canonical))
			n.lookup[c] = c
		}
	}
	return n
}

func (n *Normalizer) add(canonical string, variants []string) {
	for _, v := range variants {
		n.lookup[strings.ToLower(strings.TrimSpace(v))] = canonical
	}
}

// Canonical 返回单个技能的规范形式；空白技能返回 ""。
// 未知技能原样小写返回。
func (n *Normalizer) Canonical(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if c, ok := n.lookup[s]; ok {
		return c
	}
	return s
}

// Normalize 规范化技能列表：小写、同义词归并、按首次出现去重。
func (n *Normalizer) Normalize(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		c := n.Canonical(r)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Normalize 使用内置同义词表规范化技能列表。
func Normalize(raw []string) []string {
	return defaultNormalizer.Normalize(raw)
}

// Canonical 使用内置同义词表规范化单个技能。
func Canonical(raw string) string {
	return defaultNormalizer.Canonical(raw)
}

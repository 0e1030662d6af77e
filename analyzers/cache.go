package analyzers

import (
	"sync"

	"github.com/loginsight/logusage/template"
)

// TemplateCache memoizes message-template parses within a single
// compilation's walk, since the same literal template frequently appears
// at many call sites (e.g. a helper wrapping a logger call in a loop).
// Safe for concurrent use: the orchestrator dispatches analyzers across a
// worker pool (C6).
type TemplateCache struct {
	mu    sync.Mutex
	cache map[string]*template.Template
}

// NewTemplateCache returns an empty cache.
func NewTemplateCache() *TemplateCache {
	return &TemplateCache{cache: make(map[string]*template.Template)}
}

// Parse returns the cached parse of raw, parsing and storing it on first
// use.
func (c *TemplateCache) Parse(raw string) *template.Template {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.cache[raw]; ok {
		return t
	}
	t := template.Parse(raw)
	c.cache[raw] = t
	return t
}

package hora

import (
	"container/list"
	"sync"
)

// expressionCache is a bounded LRU of parsed requests keyed by their raw text.
// Parsing is pure, so entries never expire.
type expressionCache struct {
	capacity int
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List // front is most recently used
}

type cacheEntry struct {
	text string
	expr Expression
}

func newExpressionCache(capacity int) *expressionCache {
	return &expressionCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *expressionCache) get(text string) (Expression, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[text]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).expr, true
}

func (c *expressionCache) put(text string, expr Expression) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[text]; ok {
		el.Value.(*cacheEntry).expr = expr
		c.order.MoveToFront(el)
		return
	}
	for len(c.items) >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).text)
	}
	c.items[text] = c.order.PushFront(&cacheEntry{text: text, expr: expr})
}

func (c *expressionCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

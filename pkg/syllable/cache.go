package syllable

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	word  string
	count int
}

// wordCache memoizes estimates for folded words.
// When full, the least recently used word is evicted.
type wordCache struct {
	capacity int
	items    map[string]*list.Element
	order    *list.List
	mu       sync.Mutex
}

func newWordCache(capacity int) *wordCache {
	return &wordCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *wordCache) get(word string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[word]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).count, true
}

func (c *wordCache) put(word string, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[word]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).count = count
		return
	}

	c.items[word] = c.order.PushFront(&cacheEntry{word: word, count: count})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).word)
	}
}

func (c *wordCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

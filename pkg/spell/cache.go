package spell

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
)

// HotCache keeps the suggestion lists of recently checked misspellings.
// Eviction is least recently used, tracked with a logical access clock.
type HotCache struct {
	hotWords    map[string][]Candidate
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	maxWords    int
	mu          sync.Mutex
}

// NewHotCache returns a cache holding up to maxWords entries.
// A cache with maxWords <= 0 stores nothing.
func NewHotCache(maxWords int) *HotCache {
	if maxWords < 0 {
		maxWords = 0
	}
	return &HotCache{
		hotWords:   make(map[string][]Candidate, maxWords),
		accessTime: make(map[string]int64, maxWords),
		maxWords:   maxWords,
	}
}

// Get returns the cached candidates for word.
func (hc *HotCache) Get(word string) ([]Candidate, bool) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	c, ok := hc.hotWords[word]
	if !ok {
		return nil, false
	}
	hc.hits++
	hc.markAccessed(word)
	return c, true
}

// Put stores candidates for word, evicting the oldest entry when full.
func (hc *HotCache) Put(word string, candidates []Candidate) {
	if hc.maxWords == 0 {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	if _, ok := hc.hotWords[word]; !ok && len(hc.hotWords) >= hc.maxWords {
		hc.evictLRU()
	}
	hc.hotWords[word] = candidates
	hc.markAccessed(word)
}

// Stats reports cache occupancy and hits.
func (hc *HotCache) Stats() map[string]int {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	return map[string]int{
		"spellCacheWords": len(hc.hotWords),
		"maxSpellCache":   hc.maxWords,
		"spellCacheHits":  int(hc.hits),
	}
}

func (hc *HotCache) markAccessed(word string) {
	hc.accessCount++
	hc.accessTime[word] = hc.accessCount
}

func (hc *HotCache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = math.MaxInt64

	for word, accessTime := range hc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestWord = word
		}
	}

	if oldestWord != "" {
		delete(hc.hotWords, oldestWord)
		delete(hc.accessTime, oldestWord)
		log.Debugf("Evicted word '%s' from spell cache", oldestWord)
	}
}

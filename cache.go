package riichi

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// DefaultCacheSize is the number of concealed tile multisets a Decomposer remembers.
const DefaultCacheSize = 4096

// Decomposer memoizes DecomposeHand by the exact concealed tile counts and the
// number of declared melds. The LRU is internally locked and cached readings are
// never handed out directly, so one Decomposer may serve many goroutines.
type Decomposer struct {
	cache  *lru.Cache[string, []Decomposition]
	hits   atomic.Int64
	misses atomic.Int64
	log    zerolog.Logger
}

// NewDecomposer creates a Decomposer remembering up to size hands.
// A size below one falls back to DefaultCacheSize.
func NewDecomposer(size int) *Decomposer {
	if size < 1 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []Decomposition](size)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &Decomposer{cache: cache, log: zerolog.Nop()}
}

// SetLogger sends eviction events to l. Call it before sharing the Decomposer.
func (dc *Decomposer) SetLogger(l zerolog.Logger) {
	dc.log = l
}

// Decompose is the cached form of DecomposeHand.
func (dc *Decomposer) Decompose(h Hand) []Decomposition {
	if !meldsValid(h.Melds) {
		return nil
	}
	counts := CountTiles(h.Concealed)
	key := counts.key(len(h.Melds))

	concealed, ok := dc.cache.Get(key)
	if ok {
		dc.hits.Add(1)
	} else {
		dc.misses.Add(1)
		concealed = decomposeCounts(counts, len(h.Melds))
		if evicted := dc.cache.Add(key, concealed); evicted {
			dc.log.Debug().Int("size", dc.cache.Len()).Msg("decomposition cache evicted an entry")
		}
	}
	return attachMelds(h.Melds, concealed)
}

// CacheStats reports cache hits, misses and current entries.
type CacheStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

func (dc *Decomposer) Stats() CacheStats {
	return CacheStats{Hits: dc.hits.Load(), Misses: dc.misses.Load(), Entries: dc.cache.Len()}
}

// Purge drops every cached reading.
func (dc *Decomposer) Purge() {
	dc.cache.Purge()
}

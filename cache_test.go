package riichi

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposer_HitsAndMisses(t *testing.T) {
	dc := NewDecomposer(16)
	h := setupTestHand(t, "111222333m456p99s", nil, "9s")

	first := dc.Decompose(h)
	second := dc.Decompose(h)
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, DecomposeHand(h), first)
	assert.Equal(t, CacheStats{Hits: 1, Misses: 1, Entries: 1}, dc.Stats())

	dc.Purge()
	assert.Equal(t, 0, dc.Stats().Entries)
}

func TestDecomposer_ResultsAreNotShared(t *testing.T) {
	dc := NewDecomposer(16)
	h := setupTestHand(t, "123456m456s789p44z", nil, "1m")

	got := dc.Decompose(h)
	require.NotEmpty(t, got)
	got[0].Groups[0].Tile = Tile{SuitDragon, 3}

	again := dc.Decompose(h)
	assert.Equal(t, Tile{SuitMan, 1}, again[0].Groups[0].Tile)
}

func TestDecomposer_KeyIncludesMeldCount(t *testing.T) {
	dc := NewDecomposer(16)
	open := setupTestHand(t, "456m456s789p44z", []Meld{mustMeld(t, "chi:123m")}, "4m")
	closed := setupTestHand(t, "123456m456s789p44z", nil, "1m")

	assert.Len(t, dc.Decompose(open), 1)
	assert.Len(t, dc.Decompose(closed), 1)
	assert.Equal(t, int64(2), dc.Stats().Misses)
	assert.True(t, dc.Decompose(open)[0].Groups[0].Declared)
}

func TestDecomposer_Evicts(t *testing.T) {
	dc := NewDecomposer(1)
	dc.Decompose(setupTestHand(t, "123456m456s789p44z", nil, "1m"))
	dc.Decompose(setupTestHand(t, "1133m5577p2288s99s", nil, "9s"))
	assert.Equal(t, 1, dc.Stats().Entries)
}

func TestDecomposer_Concurrent(t *testing.T) {
	dc := NewDecomposer(8)
	hands := []Hand{
		setupTestHand(t, "111222333m456p99s", nil, "9s"),
		setupTestHand(t, "112233m445566p99s", nil, "6p"),
		setupTestHand(t, "119m19p19s1234567z", nil, "1m"),
		setupTestHand(t, "11122345678999m", nil, "5m"),
	}
	want := make([][]Decomposition, len(hands))
	for i, h := range hands {
		want[i] = DecomposeHand(h)
	}

	var wg sync.WaitGroup
	errs := make(chan int, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				i := (g + n) % len(hands)
				if !assert.ObjectsAreEqual(want[i], dc.Decompose(hands[i])) {
					errs <- i
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for i := range errs {
		t.Errorf("concurrent Decompose of %s differs from DecomposeHand", Notation(hands[i].Concealed))
	}
	stats := dc.Stats()
	assert.Equal(t, int64(16*50), stats.Hits+stats.Misses)
}

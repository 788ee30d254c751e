package riichi

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_Limit(t *testing.T) {
	const limit = 3
	wp := NewWorkerPool(limit)

	var active, peak, done atomic.Int32
	for i := 0; i < 20; i++ {
		_, err := wp.Do(context.Background(), func() {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			active.Add(-1)
			done.Add(1)
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, wp.Num(), limit)
	}
	wp.Wait()

	assert.Equal(t, int32(20), done.Load())
	assert.LessOrEqual(t, peak.Load(), int32(limit))
	assert.Zero(t, wp.Num())
}

func TestWorkerPool_Closed(t *testing.T) {
	wp := NewWorkerPool(0)
	wp.Wait()
	_, err := wp.Do(context.Background(), nil)
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPool_ContextDone(t *testing.T) {
	wp := NewWorkerPool(1)
	release := make(chan struct{})
	_, err := wp.Do(context.Background(), func() { <-release })
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	ticket, err := wp.Do(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, -1, ticket)

	close(release)
	wp.Wait()
}

func batchRequests(t *testing.T, n int) []Request {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	fixed := []Hand{
		setupTestHand(t, "123456m456s789p44z", nil, "1m"),
		setupTestHand(t, "234456678p345s55m", nil, "8p"),
		setupTestHand(t, "119m19p19s1234567z", nil, "7z"),
	}
	reqs := make([]Request, n)
	for i := range reqs {
		h := fixed[i%len(fixed)]
		if i%2 == 1 {
			tiles := GenerateDeck(rng)[:WinningHandSize]
			h = Hand{Concealed: tiles, WinningTile: tiles[0]}
		}
		reqs[i] = Request{ID: fmt.Sprintf("r%d", i), Hand: h, Context: testContext()}
	}
	return reqs
}

func TestEvaluateBatch_KeepsOrder(t *testing.T) {
	ev := NewEvaluator(DefaultRules())
	reqs := batchRequests(t, 60)

	got := ev.EvaluateBatch(context.Background(), reqs, 4)
	require.Len(t, got, len(reqs))
	for i, resp := range got {
		want, err := ev.Evaluate(reqs[i].Hand, reqs[i].Context)
		require.NoError(t, err)
		assert.Equal(t, reqs[i].ID, resp.ID)
		assert.NoError(t, resp.Err)
		assert.Empty(t, resp.Error)
		assert.Equal(t, want, resp.Result, "request %s", resp.ID)
	}
}

func TestEvaluateBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := EvaluateBatch(ctx, batchRequests(t, 8), 2)
	for _, resp := range got {
		assert.ErrorIs(t, resp.Err, context.Canceled)
		assert.Equal(t, context.Canceled.Error(), resp.Error)
		assert.False(t, resp.Result.IsWinning)
	}
}

func TestEvaluateBatch_InvalidRequest(t *testing.T) {
	reqs := []Request{
		{ID: "ok", Hand: setupTestHand(t, "123456m456s789p44z", nil, "1m"), Context: testContext()},
		{ID: "short", Hand: Hand{Concealed: MustParseTiles("123m"), WinningTile: Tile{SuitMan, 1}}, Context: testContext()},
	}

	got := EvaluateBatch(context.Background(), reqs, 2)
	assert.True(t, got[0].Result.IsWinning)
	assert.ErrorIs(t, got[1].Err, ErrWrongTileCount)
	assert.Contains(t, got[1].Error, "wrong tile count")
}

package riichi

import (
	"context"
	"errors"
	"sync/atomic"
)

var ErrPoolClosed = errors.New("pool is closed")

// WorkerPool limits how many jobs run at once.
type WorkerPool struct {
	limit   int
	tickets chan int
	num     atomic.Int32
}

// NewWorkerPool creates a pool running at most limit jobs; limit <= 0 means 10.
func NewWorkerPool(limit int) *WorkerPool {
	if limit <= 0 {
		limit = 10
	}
	wp := &WorkerPool{
		limit:   limit,
		tickets: make(chan int, limit),
	}
	for i := 0; i < limit; i++ {
		wp.tickets <- i
	}
	return wp
}

// Do waits for a free slot and runs job on its own goroutine.
// It gives up when ctx is done before a slot frees.
func (wp *WorkerPool) Do(ctx context.Context, job func()) (ticket int, err error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	select {
	case <-ctx.Done():
		return -1, ctx.Err()
	case t, ok := <-wp.tickets:
		if !ok {
			return -1, ErrPoolClosed
		}
		ticket = t
	}

	wp.num.Add(1)
	go func() {
		defer func() {
			wp.num.Add(-1)
			wp.tickets <- ticket
		}()
		if job != nil {
			job()
		}
	}()
	return ticket, nil
}

// Wait waits for all jobs to finish and closes the pool.
func (wp *WorkerPool) Wait() {
	for i := 0; i < wp.limit; i++ {
		<-wp.tickets
	}
	close(wp.tickets)
}

// Num returns the number of jobs in progress.
func (wp *WorkerPool) Num() int {
	return int(wp.num.Load())
}

// Request is one hand to score in a batch.
type Request struct {
	ID      string  `json:"id"`
	Hand    Hand    `json:"hand"`
	Context Context `json:"context"`
}

// Response pairs a request with its outcome. Err is set for invalid input or cancellation.
type Response struct {
	ID     string `json:"id"`
	Result Result `json:"result"`
	Err    error  `json:"-"`
	Error  string `json:"error,omitempty"`
}

// EvaluateBatch scores requests on at most workers goroutines. Responses keep request
// order. Requests not started before ctx is done carry ctx.Err().
func (e *Evaluator) EvaluateBatch(ctx context.Context, reqs []Request, workers int) []Response {
	out := make([]Response, len(reqs))
	wp := NewWorkerPool(workers)
	for i := range reqs {
		i := i
		job := func() {
			res, err := e.Evaluate(reqs[i].Hand, reqs[i].Context)
			out[i] = newResponse(reqs[i].ID, res, err)
		}
		if _, err := wp.Do(ctx, job); err != nil {
			out[i] = newResponse(reqs[i].ID, Result{}, err)
		}
	}
	wp.Wait()

	if err := ctx.Err(); err != nil {
		e.log.Debug().Err(err).Int("requests", len(reqs)).Msg("batch cancelled")
	}
	return out
}

// EvaluateBatch scores requests with the default rules.
func EvaluateBatch(ctx context.Context, reqs []Request, workers int) []Response {
	return defaultEvaluator.EvaluateBatch(ctx, reqs, workers)
}

func newResponse(id string, res Result, err error) Response {
	r := Response{ID: id, Result: res, Err: err}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

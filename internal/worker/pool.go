// Package worker searches root moves on a fixed number of goroutines.
package worker

import (
	"sync"
	"sync/atomic"
)

// Job is one root move to be searched.
type Job struct {
	Move  string // Move in coordinate notation
	Index int    // Position in the generated move list
}

// Result is the outcome of searching one root move.
type Result struct {
	Move  string
	Index int
	Value int    // Minimax value of the move from White's point of view
	Mate  bool   // The move mates immediately
	Nodes uint64 // Successor positions built below the root
	Err   error
}

// SearchFunc searches a single root move.
type SearchFunc func(job Job) Result

// Pool runs a SearchFunc over a move list.
type Pool struct {
	workers int
	search  SearchFunc
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// New returns a pool running search on one goroutine unless configured
// otherwise.
func New(search SearchFunc, opts ...Option) *Pool {
	p := &Pool{workers: 1, search: search}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run searches every move and returns the results indexed like moves.
// Once a job fails, jobs not yet started are skipped and the error of the
// earliest failed move is returned.
func (p *Pool) Run(moves []string) ([]Result, error) {
	jobs := make(chan Job, len(moves))
	for i, m := range moves {
		jobs <- Job{Move: m, Index: i}
	}
	close(jobs)

	results := make([]Result, len(moves))
	var failed atomic.Bool
	var wg sync.WaitGroup
	for w := 0; w < p.workers && w < len(moves); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if failed.Load() {
					continue
				}
				r := p.search(job)
				r.Move, r.Index = job.Move, job.Index
				results[job.Index] = r
				if r.Err != nil {
					failed.Store(true)
				}
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
	}
	return results, nil
}

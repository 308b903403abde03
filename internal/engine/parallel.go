package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// searchParallel searches every root move on the worker pool with the full
// window. The winner is the first move that mates at once, otherwise the
// first move with the best value, which is the move a sequential scan keeps.
func (e *Engine) searchParallel(moves []string, res *SearchResult) error {
	shared := hashing.NewThreadSafeEvalCache(0)

	pool := worker.New(func(job worker.Job) worker.Result {
		s := e.newSearchContext(shared)
		val, mate, err := s.rootValue(e, job.Move, -Infinity, Infinity)
		return worker.Result{Value: int(val), Mate: mate, Nodes: s.nodes, Err: err}
	}, worker.WithWorkers(e.opts.workers))

	results, err := pool.Run(moves)
	if err != nil {
		return err
	}
	for _, r := range results {
		res.Nodes += r.Nodes
	}
	recordCache(res, shared, e.opts.evalCache)

	best := pickRootMove(results, e.pos.ToMove)
	res.Move = results[best].Move
	res.Score = Score(results[best].Value)
	res.Mate = results[best].Mate
	return nil
}

// pickRootMove returns the index of the winning root result.
func pickRootMove(results []worker.Result, colour chess.Colour) int {
	if i := slices.IndexFunc(results, func(r worker.Result) bool { return r.Mate }); i >= 0 {
		return i
	}
	best := 0
	for i, r := range results {
		if colour == chess.White && r.Value > results[best].Value ||
			colour == chess.Black && r.Value < results[best].Value {
			best = i
		}
	}
	return best
}

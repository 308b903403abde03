package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// SearchResult describes the outcome of one search.
type SearchResult struct {
	ID           string        `json:"id"`
	Side         chess.Colour  `json:"-"`
	Move         string        `json:"move"` // Empty when the side has no legal move
	Score        Score         `json:"score"`
	Mate         bool          `json:"mate"` // Move mates immediately
	Depth        int           `json:"depth"`
	Nodes        uint64        `json:"nodes"`
	CacheHits    uint64        `json:"cache_hits"`
	CacheMisses  uint64        `json:"cache_misses"`
	CacheEntries int           `json:"cache_entries"`
	Elapsed      time.Duration `json:"elapsed_ns"`
}

// searchContext carries the per-search state through the recursion.
type searchContext struct {
	cache hashing.Cache // nil when caching is disabled
	nodes uint64        // successor positions built
}

// BestMove returns the move the search picks for colour, or "" if colour
// has no legal move.
func (e *Engine) BestMove(colour chess.Colour) (string, error) {
	res, err := e.Search(colour)
	if err != nil {
		return "", err
	}
	return res.Move, nil
}

// Search runs a depth-limited alpha-beta search for colour. If colour is
// not the side to move the search runs on a copy with the turn flipped.
//
// The position must have both kings, otherwise ErrMissingKing is returned.
// The side not searched for must not already be in check, since the search
// would then be able to capture a king; such positions return
// ErrIllegalPosition.
//
// Nodes counts the root and every successor position built once each.
func (e *Engine) Search(colour chess.Colour) (*SearchResult, error) {
	start := time.Now()

	root := e.Clone()
	if root.pos.ToMove != colour {
		root.pos.SetToMove(colour)
	}
	if err := validateRoot(root.pos, colour); err != nil {
		return nil, err
	}

	res := &SearchResult{
		ID:    uuid.NewString(),
		Side:  colour,
		Depth: e.opts.depth,
		Nodes: 1,
	}

	moves := root.LegalMovesForSide(colour)
	var err error
	switch {
	case len(moves) == 0:
		res.Score, err = root.Evaluate()
	case e.opts.workers > 1 && len(moves) > 1:
		err = root.searchParallel(moves, res)
	default:
		err = root.searchSequential(moves, res)
	}
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(start)

	e.opts.logger.Debug().
		Str("search_id", res.ID).
		Str("side", colour.String()).
		Str("fen", root.PositionNotation()).
		Int("depth", res.Depth).
		Int("workers", e.opts.workers).
		Str("move", res.Move).
		Float64("score", res.Score.Float()).
		Bool("mate", res.Mate).
		Uint64("nodes", res.Nodes).
		Uint64("cache_hits", res.CacheHits).
		Uint64("cache_misses", res.CacheMisses).
		Int("cache_entries", res.CacheEntries).
		Dur("elapsed", res.Elapsed).
		Msg("search complete")

	return res, nil
}

// validateRoot rejects positions the search cannot reason about.
func validateRoot(pos *chess.Position, colour chess.Colour) error {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if _, ok := pos.FindKing(c); !ok {
			return errors.Wrapf(errors.ErrMissingKing, "search: %s king", c)
		}
	}
	if inCheck, _ := kingInCheck(pos, colour.Opposite()); inCheck {
		return errors.Wrapf(errors.ErrIllegalPosition, "search: %s to move but %s is in check", colour, colour.Opposite())
	}
	return nil
}

func (e *Engine) newSearchContext(cache hashing.Cache) *searchContext {
	if !e.opts.evalCache {
		cache = nil
	}
	return &searchContext{cache: cache}
}

// recordCache copies the cache counters into res.
func recordCache(res *SearchResult, cache hashing.Cache, enabled bool) {
	if !enabled {
		return
	}
	res.CacheHits = cache.Hits()
	res.CacheMisses = cache.Misses()
	res.CacheEntries = cache.Len()
}

// searchSequential scans the root moves in generation order, keeping the
// first move that strictly improves the bound.
func (e *Engine) searchSequential(moves []string, res *SearchResult) error {
	cache := hashing.NewEvalCache(0)
	s := e.newSearchContext(cache)
	colour := e.pos.ToMove
	maximising := colour == chess.White
	alpha, beta := -Infinity, Infinity

	for _, notation := range moves {
		val, mate, err := s.rootValue(e, notation, alpha, beta)
		if err != nil {
			return err
		}
		if mate {
			res.Move, res.Score, res.Mate = notation, val, true
			break
		}
		if maximising && val > alpha {
			alpha = val
			res.Move, res.Score = notation, val
		} else if !maximising && val < beta {
			beta = val
			res.Move, res.Score = notation, val
		}
	}

	res.Nodes += s.nodes
	recordCache(res, cache, e.opts.evalCache)
	return nil
}

// rootValue searches one root move and reports whether it mates at once.
func (s *searchContext) rootValue(e *Engine, notation string, alpha, beta Score) (Score, bool, error) {
	child, mate, err := e.successor(notation)
	if err != nil {
		return 0, false, err
	}
	s.nodes++
	if mate {
		return mateScore(e.pos.ToMove), true, nil
	}
	if e.opts.depth <= 1 {
		val, err := s.evaluate(child)
		return val, false, err
	}
	val, err := s.alphabeta(child, e.opts.depth-1, alpha, beta)
	return val, false, err
}

// alphabeta returns the minimax value of e searched depth plies deep.
// White maximises and Black minimises.
func (s *searchContext) alphabeta(e *Engine, depth int, alpha, beta Score) (Score, error) {
	side := e.pos.ToMove
	moves := e.legalMoves(side)
	if len(moves) == 0 {
		return s.evaluate(e)
	}

	maximising := side == chess.White
	for _, notation := range moves {
		child, mate, err := e.successor(notation)
		if err != nil {
			return 0, err
		}
		s.nodes++

		var val Score
		switch {
		case mate:
			val = mateScore(side)
		case depth <= 1:
			val, err = s.evaluate(child)
		default:
			val, err = s.alphabeta(child, depth-1, alpha, beta)
		}
		if err != nil {
			return 0, err
		}

		if maximising {
			if val > alpha {
				alpha = val
			}
		} else if val < beta {
			beta = val
		}
		if mate || beta <= alpha {
			break
		}
	}

	if maximising {
		return alpha, nil
	}
	return beta, nil
}

// successor returns a copy of e with notation played, and whether the
// opponent is then checkmated.
func (e *Engine) successor(notation string) (*Engine, bool, error) {
	m, err := chess.ParseMove(notation)
	if err != nil {
		return nil, false, err
	}
	child := e.Clone()
	if err := child.applyMove(m, true); err != nil {
		return nil, false, err
	}
	mated, err := child.InCheckmate(child.pos.ToMove)
	if err != nil {
		return nil, false, err
	}
	return child, mated, nil
}

// evaluate returns the static value of e, consulting the cache first.
func (s *searchContext) evaluate(e *Engine) (Score, error) {
	var key string
	if s.cache != nil {
		key = evalKey(e.pos)
		if v, ok := s.cache.Get(key); ok {
			return Score(v), nil
		}
	}
	val, err := e.Evaluate()
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		s.cache.Put(key, int(val))
	}
	return val, nil
}

// evalKey identifies a position for the evaluation cache.
func evalKey(pos *chess.Position) string {
	return pos.Placement() + " " + string(pos.ToMove.Letter()) + " " + pos.Castling.String()
}

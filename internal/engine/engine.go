package engine

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// DefaultDepth is the number of plies searched when no depth is configured.
const DefaultDepth = 2

// MaxDepth is the deepest search an Engine accepts.
const MaxDepth = 6

// Engine holds a position and answers rules and search queries about it.
// An Engine is not safe for concurrent mutation; use Clone to hand copies
// to other goroutines.
type Engine struct {
	pos   *chess.Position
	opts  options
	cache engineCache
}

type options struct {
	depth       int
	workers     int
	evalCache   bool
	development bool
	logger      zerolog.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithDepth sets the search depth in plies. Values outside 1..MaxDepth are ignored.
func WithDepth(n int) Option {
	return func(o *options) {
		if n >= 1 && n <= MaxDepth {
			o.depth = n
		}
	}
}

// WithWorkers sets the number of goroutines used to search root moves.
// One worker searches sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithEvalCache enables or disables the per-search evaluation cache.
func WithEvalCache(enabled bool) Option {
	return func(o *options) {
		o.evalCache = enabled
	}
}

// WithDevelopment adds the minor-piece development term to evaluation.
func WithDevelopment(enabled bool) Option {
	return func(o *options) {
		o.development = enabled
	}
}

// WithLogger sets the logger that receives search summaries.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// engineCache holds values derived from one version of the position.
type engineCache struct {
	version uint64
	valid   bool

	moves    [2][]string
	hasMoves [2]bool

	material    [2]Score
	hasMaterial [2]bool

	mobility    [2]Score
	hasMobility [2]bool
}

// New creates an engine on an empty board with White to move.
func New(opts ...Option) *Engine {
	o := options{
		depth:     DefaultDepth,
		workers:   1,
		evalCache: true,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{pos: chess.NewPosition(), opts: o}
}

// NewFromFEN creates an engine set up from a FEN string.
func NewFromFEN(fen string, opts ...Option) (*Engine, error) {
	e := New(opts...)
	if err := e.SetPosition(fen); err != nil {
		return nil, err
	}
	return e, nil
}

// SetPosition replaces the position with one parsed from fen. On error the
// current position is left unchanged.
func (e *Engine) SetPosition(fen string) error {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		return errors.Wrap(err, "set position")
	}
	e.pos = pos
	e.cache = engineCache{}
	return nil
}

// PositionNotation returns the full FEN string of the current position.
func (e *Engine) PositionNotation() string {
	return PositionToFEN(e.pos)
}

// Placement returns only the piece-placement field of the position.
func (e *Engine) Placement() string {
	return e.pos.Placement()
}

// Position returns a copy of the current position.
func (e *Engine) Position() *chess.Position {
	return e.pos.Copy()
}

// SideToMove returns the colour to move.
func (e *Engine) SideToMove() chess.Colour {
	return e.pos.ToMove
}

// Depth returns the configured search depth.
func (e *Engine) Depth() int {
	return e.opts.depth
}

// SetPieceAt places a piece on the board.
func (e *Engine) SetPieceAt(file, rank int, piece chess.Piece) error {
	return e.pos.SetPieceAt(file, rank, piece)
}

// RemovePieceAt clears a square.
func (e *Engine) RemovePieceAt(file, rank int) {
	e.pos.RemovePieceAt(file, rank)
}

// PieceAt returns the piece on a square.
func (e *Engine) PieceAt(file, rank int) chess.Piece {
	return e.pos.PieceAt(file, rank)
}

// Clone returns an independent engine with the same position and options.
func (e *Engine) Clone() *Engine {
	return &Engine{pos: e.pos.Copy(), opts: e.opts}
}

// caches returns the derived-value cache, emptied if the position has
// changed since it was filled.
func (e *Engine) caches() *engineCache {
	if !e.cache.valid || e.cache.version != e.pos.Version() {
		e.cache = engineCache{version: e.pos.Version(), valid: true}
	}
	return &e.cache
}

// checkSquare validates board coordinates.
func checkSquare(file, rank int) error {
	if !chess.OnBoard(file, rank) {
		return errors.Wrapf(errors.ErrInvalidSquare, "square (%d,%d)", file, rank)
	}
	return nil
}

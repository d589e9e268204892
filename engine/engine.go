package engine

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

// Options configures an Engine at construction time: a plain struct
// passed by value, matching the teacher's Engine.Hash/Engine.Threads
// public-field convention and spec.md section 9's "no dynamic dispatch
// on the hot path... configuration passed as a plain struct".
type Options struct {
	HashMB   int
	Threads  int
	BookPath string
	UseBook  bool
}

// DefaultOptions mirrors the teacher's NewEngine defaults: a modest
// hash table and every logical CPU.
func DefaultOptions() Options {
	return Options{HashMB: 32, Threads: runtime.NumCPU(), UseBook: true}
}

// Engine is the search/evaluation core the protocol adapter drives. It
// is safe to call Stop concurrently with Go; every other method
// assumes single-threaded use by the adapter, matching spec.md
// section 5's "only one search runs at a time".
type Engine struct {
	opts     Options
	tt       *TransTable
	book     *Book
	position c.Position

	stopped atomic.Bool
	mu      sync.Mutex
	cancel  context.CancelFunc
}

// NewEngine builds an Engine and its transposition table. A book load
// failure is non-fatal per spec.md section 7: the engine logs it and
// proceeds without a book.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		opts: opts,
		tt:   NewTransTable(opts.HashMB),
	}
	e.position = c.NewInitialPosition()

	if opts.UseBook && opts.BookPath != "" {
		book, err := LoadBook(opts.BookPath)
		if err != nil {
			log.Warn().Err(err).Str("path", opts.BookPath).Msg("opening book load failed, continuing without a book")
		} else {
			e.book = book
		}
	}
	return e
}

// SetPosition replaces the engine's current position.
func (e *Engine) SetPosition(p c.Position) {
	e.position = p
}

// Position returns the engine's current position.
func (e *Engine) Position() c.Position {
	return e.position
}

// ApplyMoveString parses and plays a move against the engine's current
// position, checking it against the legal move list first.
func (e *Engine) ApplyMoveString(s string) error {
	move, err := c.ParseMoveString(s)
	if err != nil {
		return err
	}
	var buf [c.MaxMoves]c.Move
	for _, m := range e.position.GenerateMoves(buf[:]) {
		if m == move {
			e.position.Apply(m)
			return nil
		}
	}
	return c.WrapError(c.KindIllegalMove, fmt.Errorf("%w: %s", c.ErrIllegalMove, s))
}

// Go runs a search from the engine's current position under limit,
// reporting each completed depth to progress (which may be nil).
// It first consults the opening book; a book hit returns immediately
// without touching the search tree, mirroring spec.md section 6's
// book contract.
func (e *Engine) Go(ctx context.Context, limit c.Limit, progress func(c.SearchInfo)) c.SearchInfo {
	e.stopped.Store(false)

	if e.book != nil {
		if move, ok := e.book.Lookup(e.position.Key); ok {
			return c.SearchInfo{BestMove: move, PV: []c.Move{move}}
		}
	}

	e.tt.NewSearch()

	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()
	defer cancel()

	return IterateSearchParallel(ctx, e.position, limit, e.tt, e.opts.Threads, progress)
}

// Stop requests the running search to end at the next poll interval.
func (e *Engine) Stop() {
	e.stopped.Store(true)
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	e.mu.Unlock()
}

// QueryGameOver reports whether the current position has a winner or
// is a draw.
func (e *Engine) QueryGameOver() bool {
	return e.position.Winner() != c.NoWinner
}

// QueryResult returns the current position's outcome.
func (e *Engine) QueryResult() c.Winner {
	return e.position.Winner()
}

// QueryIsLegal reports whether moveStr parses and is in the current
// position's legal move list.
func (e *Engine) QueryIsLegal(moveStr string) bool {
	move, err := c.ParseMoveString(moveStr)
	if err != nil {
		return false
	}
	var buf [c.MaxMoves]c.Move
	for _, m := range e.position.GenerateMoves(buf[:]) {
		if m == move {
			return true
		}
	}
	return false
}

// QueryFEN returns the current position in PSN text form.
func (e *Engine) QueryFEN() string {
	return e.position.String()
}

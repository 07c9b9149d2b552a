package search

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// NoNode is the "none" value of NextPair arguments.
const NoNode = -1

// Sentinel errors.
var (
	// ErrBufferTooSmall is returned when the mapping does not fit maxNodes.
	ErrBufferTooSmall = errors.New("search: mapping exceeds output buffer")

	// ErrTimeLimit is returned when the time limit expires.
	ErrTimeLimit = errors.New("search: time limit exceeded")

	// ErrOptionViolation is returned for invalid options.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// State is the capability the driver needs from a partial-mapping state.
// S is the concrete state type returned by Clone.
type State[S any] interface {
	NextPair(prev1, prev2 int) (int, int, bool)
	IsFeasiblePair(n1, n2 int) bool
	AddPair(n1, n2 int)
	BackTrack()
	IsGoal() bool
	IsDead() bool
	Clone() S
	CoreLen() int
	CoreSet(c1, c2 []int) int
}

// Stats are the diagnostics counters of one search.
type Stats struct {
	// States counts every state entered, the root included.
	States int64
	// Nodes counts every candidate pair tested for feasibility.
	Nodes int64
	// Elapsed is the wall time of the search.
	Elapsed time.Duration
}

// Result is the outcome of Match. Core1[k] is mapped to Core2[k] for
// k < Size, in ascending Core1 order.
type Result struct {
	Found        bool
	Size         int
	Core1, Core2 []int
	Stats        Stats
}

// Option configures Match.
type Option func(*Options)

// Options holds driver policies.
type Options struct {
	// AnchorPruning stops branching at a state once its first n1 is exhausted.
	AnchorPruning bool

	// TimeLimit, if > 0, aborts the search after this duration.
	TimeLimit time.Duration

	// OnState is called on entering every state with its depth.
	OnState func(depth int)

	// Logger receives debug traces; nil disables logging.
	Logger *slog.Logger

	err error
}

// DefaultOptions enables anchor pruning, no time limit, no hooks.
func DefaultOptions() Options {
	return Options{
		AnchorPruning: true,
		OnState:       func(int) {},
	}
}

// WithAnchorPruning toggles anchor pruning.
func WithAnchorPruning(on bool) Option {
	return func(o *Options) { o.AnchorPruning = on }
}

// WithTimeLimit aborts the search after d (d == 0 means no limit).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative time limit %v", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithOnState registers a hook called on entering each state.
func WithOnState(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnState = fn
		}
	}
}

// WithLogger enables debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

package intersect

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures Intersect and FindAugmentingPath via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation on call.
type Option func(*Options)

// Options holds the tunables of one run.
type Options struct {
	// Ctx allows the caller to abandon a run between iterations and oracle queries.
	Ctx context.Context

	// Workers bounds the number of goroutines classifying candidate
	// elements per iteration. 1 keeps the run single-threaded.
	Workers int

	// MaxIterations caps the number of augmentations; 0 means len(ground),
	// which no correct run can exceed.
	MaxIterations int

	// Logger receives one Debug entry per augmentation and an Info entry on
	// termination.
	Logger logrus.FieldLogger

	// OnIteration is called with every trace record as it is appended.
	OnIteration func(Iteration)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a single worker
//   - the default iteration cap (MaxIterations == 0)
//   - a logger that discards everything
//   - a no-op OnIteration hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Workers:       1,
		MaxIterations: 0,
		Logger:        discardLogger(),
		OnIteration:   func(Iteration) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines used for oracle queries.
//
//	n ≥ 1: at most n concurrent classifications
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxIterations caps the number of augmentations.
//
//	n > 0: at most n augmentations
//	n == 0: default cap, len(ground)
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger routes engine logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnIteration registers a callback that receives every trace record.
func WithOnIteration(fn func(Iteration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

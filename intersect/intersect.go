package intersect

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/matroid/matroid"
)

// engine carries the state of one Intersect run: RUNNING until the finder
// reports no path, then DONE.
type engine struct {
	*finder
	opts  Options
	log   logrus.FieldLogger
	limit int
	in    bits.Bits
	size  int
	res   *Result
}

// Intersect returns a maximum common independent set of m1 and m2 restricted
// to ground, with the trace of every augmentation.
//
// Errors:
//   - ErrNilOracle, ErrInvalidGroundSet, ErrElementOutOfRange for bad input.
//   - ErrOptionViolation for invalid options.
//   - ErrInvariantViolation, ErrIterationLimit for oracle or engine defects;
//     no partial result is returned with them.
//   - ctx.Err() when the context supplied via WithContext is done.
func Intersect(m1, m2 matroid.Oracle, ground []int, opts ...Option) (*Result, error) {
	o := resolve(opts)
	if o.err != nil {
		return nil, o.err
	}
	gs, err := newGroundSet(m1, m2, ground)
	if err != nil {
		return nil, err
	}

	limit := o.MaxIterations
	if limit == 0 {
		limit = len(gs.elems)
	}
	e := &engine{
		finder: &finder{m1: m1, m2: m2, ground: gs, ctx: o.Ctx, workers: o.Workers},
		opts:   o,
		log:    o.Logger.WithField("ground", len(gs.elems)),
		limit:  limit,
		in:     bits.New(gs.universe),
		res:    &Result{Trace: []Iteration{}},
	}

	return e.run()
}

// run drives the augmentation loop.
func (e *engine) run() (*Result, error) {
	start := time.Now()
	for iter := 1; ; iter++ {
		if err := e.ctx.Err(); err != nil {
			return nil, err
		}

		path, err := e.find(e.in)
		if err != nil {
			return nil, err
		}
		if path == nil {
			e.record(Iteration{
				Number:   iter,
				Added:    []int{},
				Removed:  []int{},
				Solution: elements(e.in),
				Terminal: true,
			})
			break
		}
		if iter > e.limit {
			return nil, fmt.Errorf("%w: more than %d augmentations", ErrIterationLimit, e.limit)
		}

		if err = e.augment(path); err != nil {
			return nil, err
		}
		e.record(Iteration{
			Number:   iter,
			Added:    path.Add,
			Removed:  path.Remove,
			Solution: elements(e.in),
		})
		e.log.WithFields(logrus.Fields{
			"iteration": iter,
			"added":     path.Add,
			"removed":   path.Remove,
			"size":      e.size,
		}).Debug("augmented")
	}

	e.res.Solution = elements(e.in)
	e.log.WithFields(logrus.Fields{
		"size":       e.size,
		"iterations": len(e.res.Trace),
		"elapsed":    time.Since(start),
	}).Info("no augmenting path left")

	return e.res, nil
}

// augment applies I := (I ∪ Add) \ Remove and checks the result is one
// larger and still independent in both matroids.
func (e *engine) augment(p *Path) error {
	if len(p.Add) != len(p.Remove)+1 {
		return fmt.Errorf("%w: path adds %d and removes %d", ErrInvariantViolation, len(p.Add), len(p.Remove))
	}
	for _, x := range p.Add {
		e.in.SetBit(x, 1)
	}
	for _, y := range p.Remove {
		e.in.SetBit(y, 0)
	}

	e.size++
	if got := e.in.OnesCount(); got != e.size {
		return fmt.Errorf("%w: solution has %d elements, want %d", ErrInvariantViolation, got, e.size)
	}
	members := elements(e.in)
	if !e.m1.IsIndependent(members) {
		return fmt.Errorf("%w: %v dependent in M1", ErrInvariantViolation, members)
	}
	if !e.m2.IsIndependent(members) {
		return fmt.Errorf("%w: %v dependent in M2", ErrInvariantViolation, members)
	}

	return nil
}

func (e *engine) record(it Iteration) {
	e.res.Trace = append(e.res.Trace, it)
	e.opts.OnIteration(it)
}

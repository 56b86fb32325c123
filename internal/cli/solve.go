package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matroid/instance"
	"github.com/katalvlaran/matroid/intersect"
)

const stdinPath = "-"

type solveOptions struct {
	engine engineFlags
	output outputFormat
	trace  bool
	watch  bool
}

func solveCmd(a *app) *cobra.Command {
	var o solveOptions

	c := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Find a maximum common independent set for every instance in FILE",
		Long: "Solve reads YAML or JSON instance files (\"-\" for stdin), runs the " +
			"augmenting-path algorithm on each instance and prints the solution. " +
			"It fails when an instance's expected size does not match.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !o.watch {
				return a.solveFiles(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, o)
			}
			for _, p := range args {
				if p == stdinPath {
					return errors.New("--watch cannot be used with stdin")
				}
			}
			return a.watch(cmd.Context(), cmd.OutOrStdout(), args, o)
		},
	}

	o.engine.register(c.Flags())
	registerOutput(c.Flags(), &o.output)
	c.Flags().BoolVar(&o.trace, "trace", false, "include the per-iteration trace")
	c.Flags().BoolVarP(&o.watch, "watch", "w", false, "re-solve whenever a file changes")

	return c
}

// solveFiles loads, solves and prints every instance of every path.
// Instances whose expected size differs are counted and reported as one error
// after all output has been written.
func (a *app) solveFiles(ctx context.Context, stdin io.Reader, w io.Writer, paths []string, o solveOptions) error {
	var reports []solveReport
	for _, path := range paths {
		all, err := loadPath(path, stdin)
		if err != nil {
			return err
		}
		for _, in := range all {
			r, err := a.solveOne(ctx, in, o)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			reports = append(reports, r)
		}
	}
	if err := writeReports(w, o.output, reports); err != nil {
		return err
	}

	mismatches := 0
	for _, r := range reports {
		if r.Mismatch {
			mismatches++
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d of %d instance(s) did not match the expected size", mismatches, len(reports))
	}

	return nil
}

func (a *app) solveOne(ctx context.Context, in *instance.Instance, o solveOptions) (solveReport, error) {
	p, err := in.Build()
	if err != nil {
		return solveReport{}, err
	}

	log := a.log.WithField("instance", in.Name)
	opts := append(o.engine.options(), intersect.WithContext(ctx), intersect.WithLogger(log))
	res, err := intersect.Intersect(p.M1, p.M2, p.Ground, opts...)
	if err != nil {
		return solveReport{}, err
	}

	r := newSolveReport(in, p, res, o.trace)
	if r.Mismatch {
		log.WithFields(logrus.Fields{"size": r.Size, "expected": *in.Expected}).Warn("unexpected solution size")
	}

	return r, nil
}

func loadPath(path string, stdin io.Reader) ([]*instance.Instance, error) {
	if path != stdinPath {
		return instance.Load(path)
	}
	all, err := instance.ParseAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	for i, in := range all {
		if in.Name == "" {
			in.Name = fmt.Sprintf("stdin#%d", i+1)
		}
	}

	return all, nil
}

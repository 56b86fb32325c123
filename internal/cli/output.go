package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matroid/instance"
	"github.com/katalvlaran/matroid/intersect"
	"github.com/katalvlaran/matroid/matroid"
)

// solveReport is what solve prints for one instance.
type solveReport struct {
	Name     string                `json:"name" yaml:"name"`
	Size     int                   `json:"size" yaml:"size"`
	Solution []int                 `json:"solution" yaml:"solution,flow"`
	Edges    [][2]int              `json:"edges,omitempty" yaml:"edges,omitempty,flow"`
	Rank1    int                   `json:"rankM1" yaml:"rankM1"`
	Rank2    int                   `json:"rankM2" yaml:"rankM2"`
	Expected *int                  `json:"expected,omitempty" yaml:"expected,omitempty"`
	Mismatch bool                  `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`
	Trace    []intersect.Iteration `json:"trace,omitempty" yaml:"trace,omitempty"`
}

func newSolveReport(in *instance.Instance, p *instance.Problem, res *intersect.Result, trace bool) solveReport {
	r := solveReport{
		Name:     in.Name,
		Size:     len(res.Solution),
		Solution: res.Solution,
		Edges:    in.SolutionEdges(res.Solution),
		Rank1:    matroid.Rank(p.M1, p.Ground),
		Rank2:    matroid.Rank(p.M2, p.Ground),
		Expected: in.Expected,
		Mismatch: in.Check(len(res.Solution)) != nil,
	}
	if trace {
		r.Trace = res.Trace
	}

	return r
}

func writeReports(w io.Writer, format outputFormat, reports []solveReport) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range reports {
			writeText(w, r)
		}
		return nil
	}
}

func writeText(w io.Writer, r solveReport) {
	fmt.Fprintf(w, "%s: size %d", r.Name, r.Size)
	if r.Expected != nil {
		status := "ok"
		if r.Mismatch {
			status = "MISMATCH"
		}
		fmt.Fprintf(w, " (expected %d, %s)", *r.Expected, status)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  solution: %v\n", r.Solution)
	if r.Edges != nil {
		pairs := make([]string, len(r.Edges))
		for i, e := range r.Edges {
			pairs[i] = fmt.Sprintf("(%d,%d)", e[0], e[1])
		}
		fmt.Fprintf(w, "  edges:    %s\n", strings.Join(pairs, " "))
	}
	fmt.Fprintf(w, "  ranks:    M1 %d, M2 %d\n", r.Rank1, r.Rank2)
	for _, it := range r.Trace {
		if it.Terminal {
			fmt.Fprintf(w, "  %3d  no augmenting path, solution %v\n", it.Number, it.Solution)
			continue
		}
		fmt.Fprintf(w, "  %3d  +%v -%v -> %v\n", it.Number, it.Added, it.Removed, it.Solution)
	}
}

type verifyReport struct {
	Name string `json:"name" yaml:"name"`
	OK   bool   `json:"ok" yaml:"ok"`

	intersect.Report `yaml:",inline"`
}

func writeVerify(w io.Writer, format outputFormat, name string, rep intersect.Report) error {
	v := verifyReport{Name: name, Report: rep, OK: rep.OK()}
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s: independent in M1: %t, independent in M2: %t, maximal: %t\n",
		name, rep.IndependentInM1, rep.IndependentInM2, rep.Maximal)
	if !rep.Maximal {
		fmt.Fprintf(w, "  element %d can still be added\n", rep.Witness)
	}

	return nil
}

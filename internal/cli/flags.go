package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/matroid/intersect"
)

// engineFlags are the intersect options exposed on the command line.
type engineFlags struct {
	workers       int
	maxIterations int
}

func (f *engineFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.workers, "workers", "j", 1, "goroutines classifying candidates per iteration")
	fs.IntVar(&f.maxIterations, "max-iterations", 0, "cap on augmentations (0: size of the ground set)")
}

func (f *engineFlags) options() []intersect.Option {
	return []intersect.Option{
		intersect.WithWorkers(f.workers),
		intersect.WithMaxIterations(f.maxIterations),
	}
}

// outputFormat is a pflag.Value restricted to the supported renderings.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatYAML outputFormat = "yaml"
	formatJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }
func (o *outputFormat) Type() string   { return "format" }

func (o *outputFormat) Set(s string) error {
	switch f := outputFormat(s); f {
	case formatText, formatYAML, formatJSON:
		*o = f
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected text|yaml|json)", s)
	}
}

func registerOutput(fs *pflag.FlagSet, o *outputFormat) {
	*o = formatText
	fs.VarP(o, "output", "o", "output format: text|yaml|json")
}

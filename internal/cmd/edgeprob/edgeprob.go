// Package edgeprob implements the edgeprob command.
package edgeprob

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"text/tabwriter"

	"honnef.co/go/edgeprob"
	"honnef.co/go/edgeprob/internal/config"
)

// Config holds edgeprob command configuration.
type Config struct {
	Tolerance       float64 `env:"EDGEPROB_TOLERANCE"        envDefault:"1e-12"`
	MaxSubdivisions int     `env:"EDGEPROB_MAX_SUBDIVISIONS" envDefault:"200"`
	Parallel        bool    `env:"EDGEPROB_PARALLEL"`
	Verbose         bool    `env:"EDGEPROB_VERBOSE"`
	Blue            string  `env:"EDGEPROB_BLUE"`
	Seed            uint64  `env:"EDGEPROB_SEED"             envDefault:"1"`
}

// ParseConfig reads the environment, then parses flags into a Config. Flags
// take precedence.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "absolute and relative error bound of the integrator")
	fs.IntVar(&cfg.MaxSubdivisions, "max-subdivisions", cfg.MaxSubdivisions, "subdivision limit per integral")
	fs.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "integrate both halves of the triangle concurrently")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log the error estimate and the number of evaluations")
	fs.StringVar(&cfg.Blue, "blue", cfg.Blue, `inspect a single blue point "x,y" instead of integrating`)
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the red point drawn with -blue")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the edgeprob command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

	if cfg.Blue != "" {
		return inspect(cfg, out)
	}

	res, err := edgeprob.Probability(ctx, edgeprob.Options{
		Tolerance:       cfg.Tolerance,
		MaxSubdivisions: cfg.MaxSubdivisions,
		Parallel:        cfg.Parallel,
	})
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.Printf("error estimate %g after %d evaluations", res.AbsErr, res.Evaluations)
	}
	_, err = fmt.Fprintln(out, res)
	return err
}

// inspect reports the geometry for the configured blue point and a random red
// point.
func inspect(cfg Config, out io.Writer) error {
	blue, err := edgeprob.ParsePoint(cfg.Blue)
	if err != nil {
		return err
	}
	tri := edgeprob.LowerTriangle()
	if !tri.Contains(blue) {
		return fmt.Errorf("blue point %v is outside the triangle %v, %v, %v", blue, tri.P0, tri.P1, tri.P2)
	}

	field := edgeprob.UnitField()
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	red := edgeprob.UnitSquare().RandomPoint(rng)
	w := edgeprob.NewWitness(field, blue, red)
	r1, r2 := field.Radii(blue)
	num := edgeprob.FormatProbability

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "blue\t%v\n", blue)
	fmt.Fprintf(tw, "radii\t%s\t%s\n", num(r1), num(r2))
	fmt.Fprintf(tw, "overlap\t%v\t%s\n", field.OverlapCase(blue), num(field.Overlap(blue)))
	fmt.Fprintf(tw, "valid area\t%s\n", num(field.ValidArea(blue)))
	fmt.Fprintf(tw, "red\t%v\n", red)
	if w.HasFoot {
		fmt.Fprintf(tw, "foot\t%v\ton edge: %t\n", w.Foot, w.FootOnEdge())
	} else {
		fmt.Fprintf(tw, "foot\tnone\n")
	}
	fmt.Fprintf(tw, "valid\t%t\n", w.Valid())
	return tw.Flush()
}

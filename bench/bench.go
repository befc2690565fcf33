// Package bench drives repeated cardinality-estimation trials against the
// sketch, optionally injecting register bit flips to measure how well the
// Remove-Minimum protection recovers, and writes per-cardinality error
// statistics to a TSV file.
package bench

import (
	"bufio"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"sort"
	"time"

	rhll "github.com/Zaire404/RHLL"
	"github.com/Zaire404/RHLL/log"
	"github.com/Zaire404/RHLL/util"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/aclements/go-moremath/stats"
	"github.com/pkg/errors"
)

type Options struct {
	BitWidth      uint8
	Cardinalities []int
	Trials        int   // trials per cardinality
	BitFlips      int   // register bit flips injected per trial
	Threshold     uint8 // Remove-Minimum gap threshold
	Seed          uint64
	OutputPath    string
}

type Runner struct {
	opt *Options
	rng *rand.Rand

	// insert latency distribution across the whole run
	latency *ddsketch.DDSketch
}

func NewRunner(opt *Options) (*Runner, error) {
	if opt.Trials <= 0 {
		return nil, errors.Errorf("trials must be positive, got %d", opt.Trials)
	}
	latency, err := ddsketch.NewDefaultDDSketch(0.01)
	if err != nil {
		return nil, errors.Wrap(err, "latency sketch")
	}
	return &Runner{
		opt:     opt,
		rng:     rand.New(rand.NewPCG(opt.Seed, opt.Seed^0x9e3779b97f4a7c15)),
		latency: latency,
	}, nil
}

// Run executes Trials trials for every configured cardinality and writes
// one TSV row per cardinality.
func (r *Runner) Run() error {
	log.Logger.Infof("benchmark options: %s", log.StructToString(r.opt))

	f, err := os.Create(r.opt.OutputPath)
	if err != nil {
		return errors.Wrapf(err, "create output file %s", r.opt.OutputPath)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "cardinality\ttrials\tflips\traw_mean_err\traw_stddev\traw_p95\tprot_mean_err\tprot_stddev\tprot_p95")

	for _, k := range r.opt.Cardinalities {
		raw := stats.Sample{}
		prot := stats.Sample{}
		for t := 0; t < r.opt.Trials; t++ {
			rawErr, protErr, err := r.runTrial(k)
			if err != nil {
				return err
			}
			raw.Xs = append(raw.Xs, rawErr)
			prot.Xs = append(prot.Xs, protErr)
		}
		sort.Float64s(raw.Xs)
		sort.Float64s(prot.Xs)
		raw.Sorted = true
		prot.Sorted = true

		fmt.Fprintf(w, "%d\t%d\t%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\n",
			k, r.opt.Trials, r.opt.BitFlips,
			raw.Mean(), raw.StdDev(), raw.Quantile(0.95),
			prot.Mean(), prot.StdDev(), prot.Quantile(0.95))
		log.Logger.Infof("cardinality %d done: raw mean err %.4f, protected mean err %.4f",
			k, raw.Mean(), prot.Mean())
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "flush output file")
	}

	if p50, err := r.latency.GetValueAtQuantile(0.5); err == nil {
		p99, _ := r.latency.GetValueAtQuantile(0.99)
		log.Logger.Infof("insert latency: p50 %.0fns, p99 %.0fns", p50, p99)
	}
	return nil
}

// runTrial inserts k distinct random keys into a fresh sketch, injects
// the configured bit flips, runs a protection pass and returns the
// relative error of the raw and protected estimates.
func (r *Runner) runTrial(k int) (rawErr, protErr float64, err error) {
	sketch, err := rhll.New(r.opt.BitWidth)
	if err != nil {
		return 0, 0, err
	}

	seen := make(map[uint64]struct{}, k)
	for len(seen) < k {
		key := util.Uint64ToBytes(r.rng.Uint64())
		fp := util.Fingerprint(key)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}

		start := time.Now()
		sketch.Add(key)
		if addErr := r.latency.Add(float64(time.Since(start).Nanoseconds())); addErr != nil {
			log.HandleError(addErr)
		}
	}

	r.inject(sketch)
	sketch.Protect(r.opt.Threshold)

	exact := float64(len(seen))
	rawErr = relativeError(sketch.Estimate(false), exact)
	protErr = relativeError(sketch.Estimate(true), exact)
	return rawErr, protErr, nil
}

// inject flips BitFlips random bits at random register positions through
// the corruption surface.
func (r *Runner) inject(sketch *rhll.Sketch) {
	var c rhll.Corruptor = sketch
	for i := 0; i < r.opt.BitFlips; i++ {
		index := uint32(r.rng.IntN(int(sketch.RegisterCount())))
		bit := uint8(r.rng.IntN(8))
		c.FlipBit(index, bit)
	}
}

func relativeError(estimate, exact float64) float64 {
	return math.Abs(estimate-exact) / exact
}

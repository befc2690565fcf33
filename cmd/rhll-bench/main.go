package main

import (
	"flag"
	"os"
	"time"

	"github.com/Zaire404/RHLL/bench"
	"github.com/Zaire404/RHLL/config"
	"github.com/Zaire404/RHLL/log"
)

func main() {
	config.Init()
	log.Init()

	bitWidth := flag.Int("b", config.GetInt("bench.bitwidth"), "register index bit width in [4, 30]")
	trials := flag.Int("trials", config.GetInt("bench.trials"), "trials per cardinality")
	flips := flag.Int("flips", config.GetInt("bench.bitflips"), "register bit flips injected per trial")
	threshold := flag.Int("threshold", config.GetInt("bench.threshold"), "Remove-Minimum gap threshold")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed (defaults to wall clock)")
	output := flag.String("output", config.GetString("bench.output"), "TSV file for the results")
	flag.Parse()

	opt := &bench.Options{
		BitWidth:      uint8(*bitWidth),
		Cardinalities: config.GetIntSlice("bench.cardinalities"),
		Trials:        *trials,
		BitFlips:      *flips,
		Threshold:     uint8(*threshold),
		Seed:          *seed,
		OutputPath:    *output,
	}

	runner, err := bench.NewRunner(opt)
	if err != nil {
		log.HandleError(err)
		os.Exit(1)
	}
	if err := runner.Run(); err != nil {
		log.HandleError(err)
		os.Exit(1)
	}
}

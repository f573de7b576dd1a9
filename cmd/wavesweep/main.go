package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"wavesweep/internal/artifact"
	"wavesweep/internal/pde"
	"wavesweep/internal/sweep"
)

// floatList parses a comma-separated list of floats as a flag value.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	var out floatList
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("bad list entry %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return fmt.Errorf("empty list")
	}
	*l = out
	return nil
}

func main() {
	base := pde.Default()
	base.Bind(flag.CommandLine)

	out := flag.String("out", "3d_extended_run", "output directory for run artifacts")
	threshold := flag.Float64("save-threshold", sweep.DefaultSaveThreshold,
		"relative amplitude change required to save a run")
	animFlag := flag.String("anim", "gif", "per-run animation: off, gif or avi")
	fps := flag.Int("fps", 5, "animation frames per second")

	alphas := floatList{1e-6, 2e-6, 3e-6, 4e-6}
	betas := floatList{1e-7, 2e-7, 3e-7, 4e-7, 5e-7, 6e-7, 7e-7, 8e-7, 9e-7, 1e-6}
	flag.Var(&alphas, "alphas", "comma-separated alpha values to sweep")
	flag.Var(&betas, "betas", "comma-separated beta values to sweep")
	flag.Parse()

	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}
	anim, err := artifact.ParseAnimMode(*animFlag)
	if err != nil {
		log.Fatal(err)
	}

	writer, err := artifact.NewWriter(*out)
	if err != nil {
		log.Fatal(err)
	}

	var observers sweep.ObserverFactory
	if anim != artifact.AnimOff && base.RealtimeInterval > 0 {
		observers = func(alpha, beta float64) sweep.RunObserver {
			name := artifact.PairName("simulation", alpha, beta, anim.Ext())
			return artifact.NewAnimator(writer.Path(name), anim, *fps)
		}
	}

	log.Printf("sweeping %dx%d (alpha x beta) runs on a %dx%dx%d grid, %d steps each",
		len(alphas), len(betas), base.NX, base.NY, base.NZ, base.TimeSteps)

	start := time.Now()
	entries, err := sweep.New(base, *threshold, writer, observers).Run(alphas, betas)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Println()
	fmt.Println("   alpha    |    beta    |  final max   |  last amp    | status")
	fmt.Println("------------+------------+--------------+--------------+----------")
	finals := make([]float64, 0, len(entries))
	for _, e := range entries {
		lastAmp := "      n/a"
		if e.HasLastAmp {
			lastAmp = fmt.Sprintf("%12.3e", e.LastAmp)
		}
		marker := " "
		if e.Saved {
			marker = "*"
		}
		fmt.Printf("%s %9.1e | %10.1e | %12.3e | %s | %s\n",
			marker, e.Alpha, e.Beta, e.FinalMax, lastAmp, e.Status)
		finals = append(finals, e.FinalMax)
	}

	if len(finals) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(finals,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("final max amplitude per run")))
	}
	if len(finals) > 0 {
		log.Printf("peak final amplitude %.3e", floats.Max(finals))
	}
	log.Printf("sweep finished in %s, artifacts in %q (runs marked * were saved)",
		elapsed.Round(time.Millisecond), writer.Dir())
}

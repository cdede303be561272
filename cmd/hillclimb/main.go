// Command hillclimb solves the hill-climbing puzzle.
//
// Usage:
//
//	hillclimb [-animate] [-frame 50ms] [-v] [input]
//
// input defaults to inputs/question. With -animate the reversed search of
// part two is drawn layer by layer on the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillwalk/heightmap"
	"github.com/katalvlaran/hillwalk/hill"
)

const defaultInput = "inputs/question"

var (
	log = logrus.New()

	animate bool
	frame   time.Duration
	verbose bool
)

func init() {
	flag.BoolVar(&animate, "animate", false, "draw the part two search on the terminal")
	flag.DurationVar(&frame, "frame", 50*time.Millisecond, "delay between animation frames")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}

func main() {
	flag.Parse()
	setupLogging()

	path := defaultInput
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("unable to open input: ", err)
	}
	hm, err := heightmap.Parse(f)
	f.Close()
	if err != nil {
		log.Fatal("invalid heightmap: ", err)
	}
	log.WithFields(logrus.Fields{
		"width":  hm.Width(),
		"height": hm.Height(),
		"start":  hm.Start,
		"goal":   hm.Goal,
	}).Debug("heightmap parsed")

	steps, err := hill.PartOne(hm)
	if err != nil {
		log.Fatal("part one: ", err)
	}
	fmt.Printf("Part One:\n  The shortest distance it would take to get to the place with the best signal is: %d\n", steps)

	var opts []hill.Option
	if animate {
		anim, err := hill.NewAnimator(hm, os.Stdout, frame)
		if err != nil {
			log.Fatal("animator: ", err)
		}
		opts = append(opts, hill.WithObserver(anim.OnLayer))
		defer func() {
			log.WithField("frames", anim.Frames()).Debug("animation finished")
		}()
	}
	steps, err = hill.PartTwo(hm, opts...)
	if err != nil {
		log.Fatal("part two: ", err)
	}
	fmt.Printf("Part Two:\n  The shortest distance among the reachable lowest points to the highest point (best signal) is: %d\n", steps)
}

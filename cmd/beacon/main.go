// Command beacon finds where the distress beacon can and cannot be.
//
// Usage:
//
//	beacon [-row 2000000] [-limit 4000000] [-v] [input]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillwalk/beacon"
)

const defaultInput = "inputs/question"

var (
	log = logrus.New()

	row     int
	limit   int
	verbose bool
)

func init() {
	flag.IntVar(&row, "row", 2000000, "row to count beacon-free positions on")
	flag.IntVar(&limit, "limit", 4000000, "upper bound of the distress beacon search square")
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
	reports, err := beacon.ParseReports(f)
	f.Close()
	if err != nil {
		log.Fatal("invalid sensor data: ", err)
	}
	log.WithField("sensors", len(reports)).Debug("sensor data parsed")

	n, err := beacon.PartOne(reports, row)
	if err != nil {
		log.Fatal("part one: ", err)
	}
	fmt.Printf("Part One:\n  The number of positions the beacon can't be in row %d is: %d\n", row, n)

	c, err := beacon.DistressBeacon(reports, limit)
	if err != nil {
		log.Fatal("part two: ", err)
	}
	log.WithField("position", c).Debug("distress beacon found")
	fmt.Printf("Part Two:\n  The tuning frequency of the distress beacon was determined to be: %d\n", beacon.TuningFrequency(c))
}

// Command regolith simulates sand pouring into the scanned cave.
//
// Usage:
//
//	regolith [-show] [-v] [input]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillwalk/regolith"
)

const defaultInput = "inputs/question"

var (
	log = logrus.New()

	show    bool
	verbose bool
)

func init() {
	flag.BoolVar(&show, "show", false, "print the scanned cave before simulating")
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
	paths, err := regolith.ParsePaths(f)
	f.Close()
	if err != nil {
		log.Fatal("invalid cave scan: ", err)
	}
	log.WithField("paths", len(paths)).Debug("cave scan parsed")

	if show {
		cave, err := regolith.NewCave(paths, regolith.DefaultSource)
		if err != nil {
			log.Fatal("cave: ", err)
		}
		fmt.Println(cave.Render(true))
	}

	n, err := regolith.PartOne(paths, regolith.DefaultSource)
	if err != nil {
		log.Fatal("part one: ", err)
	}
	fmt.Printf("Part One:\n  The total amount of sand that piled up in the cave before falling into the abyss was: %d\n", n)

	n, err = regolith.PartTwo(paths, regolith.DefaultSource)
	if err != nil {
		log.Fatal("part two: ", err)
	}
	fmt.Printf("Part Two:\n  The total amount of sand that it took to fill up the cave with an extensive floor was: %d\n", n)
}

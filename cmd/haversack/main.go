// Command haversack reads bag rules from a file and prints how many bag
// types can eventually hold the target bag and how many bags the target
// must itself hold.
//
// Settings come from the environment or a .env file:
//
//	HAVERSACK_INPUT       rule file (default ./puzzle_input.txt)
//	HAVERSACK_TARGET      bag to ask about (default "shiny gold")
//	HAVERSACK_CACHE_SIZE  nested-count memo size (default 1024)
//	HAVERSACK_LENIENT     skip malformed lines instead of failing
//	HAVERSACK_EXPLAIN     print one containment chain to the target
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/haversack/containment"
	"github.com/katalvlaran/haversack/core"
	"github.com/katalvlaran/haversack/internal/config"
	"github.com/katalvlaran/haversack/parser"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("haversack: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run solves both puzzles for cfg and writes the answers to out.
func run(cfg *config.Config, out io.Writer) error {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	lines, err := parser.ReadLines(f)
	if err != nil {
		return err
	}
	g, err := parseRules(lines, cfg.Lenient)
	if err != nil {
		return err
	}
	log.Printf("loaded %d rules (%d content entries) from %s", g.BagCount(), g.ContentCount(), cfg.Input)

	e, err := containment.New(g, containment.WithCacheSize(cfg.CacheSize))
	if err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		log.Printf("rules contain cycles, affected queries will fail: %v", err)
	}

	containers, err := e.CountContainers(cfg.Target)
	if err != nil {
		return fmt.Errorf("puzzle 1: %w", err)
	}
	fmt.Fprintf(out, "Puzzle 1 Solution -> %d\n", containers)

	nested, err := e.CountNested(cfg.Target)
	if err != nil {
		return fmt.Errorf("puzzle 2: %w", err)
	}
	fmt.Fprintf(out, "Puzzle 2 Solution -> %d\n", nested)

	if cfg.Explain {
		return explain(e, cfg.Target, out)
	}

	return nil
}

// parseRules parses lines strictly, or skips and logs malformed lines
// when lenient is set.
func parseRules(lines []string, lenient bool) (*core.Graph, error) {
	if !lenient {
		return parser.Parse(lines)
	}
	g, errs := parser.ParseAll(lines)
	for _, perr := range errs {
		log.Printf("skipped: %v", perr)
	}

	return g, nil
}

// explain prints a shortest chain from the first container of target.
func explain(e *containment.Engine, target string, out io.Writer) error {
	containers, err := e.Containers(target)
	if err != nil {
		return err
	}
	if len(containers) == 0 {
		fmt.Fprintf(out, "no bag can hold %s\n", target)
		return nil
	}
	chain, err := e.Explain(target, containers[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Chain -> %s\n", strings.Join(chain, " → "))

	return nil
}

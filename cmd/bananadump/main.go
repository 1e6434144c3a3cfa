// Command bananadump builds the up- and down-sign banana trees over a
// sample sequence read from a file (or stdin) and prints each tree and
// the extracted persistence diagram.
//
// Input is one "order value" pair per line, in increasing order:
//
//	0 1.5
//	1 3.0
//	2 0.5
//	3 2.0
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	bt "github.com/banana-persist/bananatree"
	"github.com/banana-persist/bananatree/diagram"
	"github.com/banana-persist/bananatree/sample"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	path := flag.String("f", "", "input file (default: stdin)")
	flag.Parse()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := run(*path, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "bananadump:", err)
		os.Exit(1)
	}
}

func run(path string, out io.Writer) error {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	orders, values, err := readSequence(in)
	if err != nil {
		return err
	}
	items := sample.NewSequence(orders, values)
	left, right := items[0], items[len(items)-1]

	up, err := bt.Construct(bt.Up, left, right)
	if err != nil {
		return fmt.Errorf("up-tree: %w", err)
	}
	down, err := bt.Construct(bt.Down, left, right)
	if err != nil {
		return fmt.Errorf("down-tree: %w", err)
	}

	fmt.Fprintln(out, "up-tree:")
	fmt.Fprintln(out, up.Sprint())
	fmt.Fprintln(out, "down-tree:")
	fmt.Fprintln(out, down.Sprint())

	d := diagram.Extract(up, down)
	fmt.Fprintln(out, "persistence diagram:")
	for _, p := range d.Pairs() {
		fmt.Fprintln(out, p)
	}
	return nil
}

func readSequence(r io.Reader) (orders, values []float64, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("malformed line %q: expected \"order value\"", line)
		}
		o, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("bad order in %q: %w", line, err)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("bad value in %q: %w", line, err)
		}
		orders = append(orders, o)
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(orders) == 0 {
		return nil, nil, fmt.Errorf("empty sample sequence")
	}
	return orders, values, nil
}

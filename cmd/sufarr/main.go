// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/arborix/suffixarr"
)

const _APP_HEADER = "sufarr (c) Nikita Kamenev"

var log = suffixarr.NewPrinter(bufio.NewWriter(os.Stdout))

func main() {
	text := flag.String("text", "", "literal text to index")
	input := flag.String("input", "", "path to a file to index")
	contextWidth := flag.Int("context", 16, "symbols of context on either side of a keyword-in-context match")
	dump := flag.String("dump", "", "optional path to dump SA and RANK after construction")
	verbose := flag.Bool("verbose", true, "report timing and memory usage")
	flag.Parse()

	log.Println(_APP_HEADER)

	runes, err := loadText(*text, *input)
	if err != nil {
		log.Println(fmt.Sprintf("error: %v", err))
		os.Exit(1)
	}

	cfg := suffixarr.Config{ContextWidth: *contextWidth}

	before := time.Now()
	sa := suffixarr.NewWithConfig(runes, cfg)
	after := time.Now()

	if *verbose {
		reportConstruction(before, after, len(runes))
	}

	if *dump != "" {
		if err := dumpArray(*dump, sa); err != nil {
			log.Println(fmt.Sprintf("error: %v", err))
			os.Exit(1)
		}
	}

	runQueryLoop(sa)
}

// loadText returns the literal text if non-empty, otherwise reads path,
// otherwise reads stdin.
func loadText(text, path string) ([]rune, error) {
	if text != "" {
		return []rune(text), nil
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return []rune(string(b)), nil
	}
	b, err := readAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return []rune(string(b)), nil
}

func readAll(f *os.File) ([]byte, error) {
	var buf []byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		buf = append(buf, scanner.Bytes()...)
		buf = append(buf, '\n')
	}
	return buf, scanner.Err()
}

func reportConstruction(before, after time.Time, n int) {
	delta := after.Sub(before).Nanoseconds() / 1000000
	var msg string
	if delta >= 1000 {
		msg = fmt.Sprintf("%.1f s", float64(delta)/1000)
	} else {
		msg = fmt.Sprintf("%d ms", delta)
	}
	log.Println(fmt.Sprintf("indexed %d symbols in %s", n, msg))

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	log.Println(fmt.Sprintf("heap in use: %.1f MiB", float64(mem.HeapInuse)/(1024*1024)))
}

func dumpArray(path string, sa *suffixarr.SuffixArray[rune]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for r := 0; r < sa.Len(); r++ {
		pos, _ := sa.SuffixAtRank(r)
		rank, _ := sa.RankOfSuffix(r)
		if _, err := fmt.Fprintf(w, "SA[%d]=%d RANK[%d]=%d\n", r, pos, r, rank); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// runQueryLoop reads one pattern per line from stdin and prints a
// keyword-in-context report, until an empty line or EOF.
func runQueryLoop(sa *suffixarr.SuffixArray[rune]) {
	log.Println("enter a pattern to search (empty line or EOF to quit):")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return
		}

		pattern := []rune(line)
		hits := sa.KeywordInContext(pattern)
		if len(hits) == 0 {
			log.Println("no matches")
			continue
		}
		for _, h := range hits {
			log.Println(fmt.Sprintf("%6d: %s", h.Position, string(h.Window)))
		}
	}
}

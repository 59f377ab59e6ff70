package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/limaJavier/permtable/internal/config"
	"github.com/limaJavier/permtable/internal/export"
	"github.com/limaJavier/permtable/pkg/permutation"
	"github.com/spf13/pflag"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("permtable: ")

	cfg, err := parseArguments(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	} else if err != nil {
		log.Fatal(err)
	}

	// Build table
	columns, _ := permutation.Factorial(cfg.Limit)
	log.Printf("building %v permutations of %v indices (%v cells) with %v workers",
		humanize.Comma(int64(columns)), cfg.Limit, humanize.Comma(int64(columns*cfg.Limit)), max(cfg.Workers, 1))
	start := time.Now()
	table, err := permutation.BuildWithOptions(cfg.Limit, cfg.Options())
	if err != nil {
		log.Fatalf("an error occurred during table construction: %v", err)
	}
	log.Printf("table built in %v", time.Since(start))

	// Verify table correctness
	if cfg.Verify {
		if err := permutation.Verify(table); err != nil {
			log.Fatalf("verification failed: %v", err)
		}
		log.Printf("table verified, fingerprint %v", export.Fingerprint(table))
	}

	output, err := export.Marshal(table, cfg.Format, cfg.Compress)
	if err != nil {
		log.Fatalf("an error occurred while building output: %v", err)
	}

	// Write the results to the Standard Output unless an output file was given
	if cfg.Out == "" {
		if _, err := os.Stdout.Write(output); err != nil {
			log.Fatalf("an error occurred while writing to the standard output: %v", err)
		}
		return
	}
	if err := os.WriteFile(cfg.Out, output, 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
	log.Printf("wrote %v to %v", humanize.Bytes(uint64(len(output))), cfg.Out)
}

// parseArguments loads the config file, if any, and lets explicitly set flags override it
func parseArguments(arguments []string) (config.Config, error) {
	defaults := config.Default()
	flagSet := pflag.NewFlagSet("permtable", pflag.ContinueOnError)
	configPath := flagSet.String("config", "", "Path to a JSON or YAML config file; flags given explicitly take precedence over it")
	limit := flagSet.Uint64P("limit", "n", defaults.Limit, fmt.Sprintf("Number of indices to permute, at most %v", permutation.MaxTableLimit))
	workers := flagSet.IntP("workers", "w", defaults.Workers, "Goroutines filling columns concurrently; 1 builds sequentially")
	chunkSize := flagSet.Uint64("chunk-size", defaults.ChunkSize, "Smallest column range handed to a worker; 0 selects the default")
	order := flagSet.String("order", defaults.Order, `Row order of the decoding pass: "descending" or "ascending"`)
	format := flagSet.StringP("format", "f", defaults.Format, fmt.Sprintf("Output format. Allowed values are: %v", strings.Join(config.ValidFormats, ", ")))
	compress := flagSet.Bool("compress", defaults.Compress, "Compress the output with zstd")
	out := flagSet.StringP("out", "o", defaults.Out, "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	verify := flagSet.Bool("verify", defaults.Verify, "Verify that the table enumerates every permutation exactly once")
	if err := flagSet.Parse(arguments); err != nil {
		return config.Config{}, err
	}

	cfg := defaults
	if *configPath != "" {
		var err error
		if cfg, err = config.FromFile(*configPath); err != nil {
			return config.Config{}, err
		}
	}

	overrides := map[string]func(){
		"limit":      func() { cfg.Limit = *limit },
		"workers":    func() { cfg.Workers = *workers },
		"chunk-size": func() { cfg.ChunkSize = *chunkSize },
		"order":      func() { cfg.Order = *order },
		"format":     func() { cfg.Format = *format },
		"compress":   func() { cfg.Compress = *compress },
		"out":        func() { cfg.Out = *out },
		"verify":     func() { cfg.Verify = *verify },
	}
	flagSet.Visit(func(flag *pflag.Flag) {
		if override, ok := overrides[flag.Name]; ok {
			override()
		}
	})

	return cfg, cfg.Validate()
}

package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/limaJavier/permtable/internal/export"
	"github.com/limaJavier/permtable/pkg/permutation"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

type BuildMetadata struct {
	Limit   uint64
	Workers int
	Order   permutation.DecodeOrder
}

type BenchmarkResult struct {
	Build       BuildMetadata
	Columns     uint64
	Duration    int64
	Memory      float32
	Fingerprint string
}

func main() {
	limitsPtr := pflag.String("limits", "1-9", `Limits to benchmark, as a range ("1-9") or a comma separated list ("4,8,10")`)
	workersPtr := pflag.String("workers", fmt.Sprintf("1,%v", runtime.NumCPU()), "Comma separated worker counts to benchmark")
	outPtr := pflag.String("out", "benchmark_results.csv", "Path to the CSV file where results will be written")
	pflag.Parse()

	limits, err := parseList(*limitsPtr)
	if err != nil {
		log.Fatalf("invalid limits: %v", err)
	}
	workers, err := parseList(*workersPtr)
	if err != nil {
		log.Fatalf("invalid workers: %v", err)
	}

	builds := getBuilds(limits, lo.Map(workers, func(count uint64, _ int) int { return int(count) }))
	results := make([]BenchmarkResult, 0, len(builds))
	for _, build := range builds {
		fmt.Printf("Benchmarking limit \"%v\" with \"%v\" workers and \"%v\" decoding\n", build.Limit, build.Workers, build.Order)
		results = append(results, measure(build))
	}

	checkFingerprints(results)
	toCsv(*outPtr, results)
}

func getBuilds(limits []uint64, workers []int) []BuildMetadata {
	builds := make([]BuildMetadata, 0, len(limits)*len(workers)*2)
	for _, limit := range limits {
		for _, count := range workers {
			for _, order := range []permutation.DecodeOrder{permutation.Descending, permutation.Ascending} {
				builds = append(builds, BuildMetadata{Limit: limit, Workers: count, Order: order})
			}
		}
	}
	return builds
}

func measure(build BuildMetadata) BenchmarkResult {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	table, err := permutation.BuildWithOptions(build.Limit, permutation.Options{Workers: build.Workers, Order: build.Order})
	duration := time.Since(start)
	if err != nil {
		log.Fatalf("an error occurred while building limit \"%v\" with \"%v\" workers: %v", build.Limit, build.Workers, err)
	}

	runtime.ReadMemStats(&after)
	allocated := after.TotalAlloc - before.TotalAlloc
	fmt.Printf("\t%v columns in %v, %v allocated\n", humanize.Comma(int64(table.Columns)), duration, humanize.Bytes(allocated))

	return BenchmarkResult{
		Build:       build,
		Columns:     table.Columns,
		Duration:    duration.Milliseconds(),
		Memory:      float32(allocated) / (1024 * 1024),
		Fingerprint: export.Fingerprint(table),
	}
}

// checkFingerprints fails when two builds of the same limit produced different tables
func checkFingerprints(results []BenchmarkResult) {
	byLimit := lo.GroupBy(results, func(result BenchmarkResult) uint64 { return result.Build.Limit })
	for limit, group := range byLimit {
		fingerprints := lo.Uniq(lo.Map(group, func(result BenchmarkResult, _ int) string { return result.Fingerprint }))
		if len(fingerprints) != 1 {
			log.Fatalf("builds of limit \"%v\" disagree: %v", limit, fingerprints)
		}
	}
}

func toCsv(path string, results []BenchmarkResult) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Limit", "Workers", "Order", "Columns", "Duration(ms)", "Memory(MB)", "Fingerprint"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Build.Limit),
			fmt.Sprintf("%d", result.Build.Workers),
			result.Build.Order.String(),
			fmt.Sprintf("%d", result.Columns),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			result.Fingerprint,
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

// parseList accepts either an inclusive range "a-b" or a comma separated list of numbers
func parseList(list string) ([]uint64, error) {
	if from, to, ok := strings.Cut(list, "-"); ok {
		first, err := strconv.ParseUint(strings.TrimSpace(from), 10, 64)
		if err != nil {
			return nil, err
		}
		last, err := strconv.ParseUint(strings.TrimSpace(to), 10, 64)
		if err != nil {
			return nil, err
		}
		if first > last {
			return nil, errors.Errorf("empty range: %v", list)
		}
		return lo.RangeFrom(first, int(last-first+1)), nil
	}

	values := make([]uint64, 0)
	for _, item := range strings.Split(list, ",") {
		value, err := strconv.ParseUint(strings.TrimSpace(item), 10, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

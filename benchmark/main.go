// Package main benchmarks the yomu CLI against corpora of different sizes.
// Each corpus is scored without a tag cache, then several times with the SQLite
// cache. The first cached run is cold and the rest are averaged as warm.
// Results are written to a CSV file for documentation.
//
// Prerequisites:
// - yomu binary installed and available in PATH
// - Corpus directories of .txt files under the base directory
//
// Usage: go run benchmark/main.go [corpus-base-dir]
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the timings of one corpus and command.
type BenchmarkResult struct {
	Corpus      string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	CorpusBase  string
	Timeout     time.Duration
	Workers     int
	NoCacheRuns int
	CacheRuns   int
	Corpora     []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [corpus-base-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		CorpusBase:  os.Args[1],
		Timeout:     10 * time.Minute,
		Workers:     8,
		NoCacheRuns: 2,
		CacheRuns:   4,
		Corpora:     []string{"short-stories", "novellas", "aozora-sample"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Clearing cache...\n")
	if output, err := exec.Command("yomu", "cache", "clear").CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	}

	var results []BenchmarkResult
	for _, corpus := range config.Corpora {
		corpusPath := filepath.Join(config.CorpusBase, corpus)
		fmt.Printf("Benchmarking %s\n", corpus)
		results = append(results,
			runBenchmarkSuite(config, corpus, corpusPath, "score"),
			runBenchmarkSuite(config, corpus, corpusPath, "score", "--lee-sentence-source", "tokens"),
		)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Benchmark complete\n")
	for _, r := range results {
		fmt.Printf("  %-16s %-40s No-cache: %s, Cold: %s, Warm: %s\n", r.Corpus, r.Command, r.NoCacheTime, r.ColdTime, r.WarmTime)
	}
}

// checkPrerequisites verifies that the yomu binary and the corpora exist.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("yomu"); err != nil {
		return errors.New("yomu binary not found in PATH")
	}
	for _, corpus := range config.Corpora {
		p := filepath.Join(config.CorpusBase, corpus)
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("corpus %s not found at %s", corpus, p)
		}
	}
	return nil
}

// runBenchmarkSuite runs the no-cache and cache phases for one command.
func runBenchmarkSuite(config BenchmarkConfig, corpus, corpusPath string, args ...string) BenchmarkResult {
	label := strings.Join(args, " ")
	fmt.Printf("Running %s on %s\n", label, corpus)

	noCache := runBenchmark(config, corpusPath, "none", config.NoCacheRuns, args)
	cached := runBenchmark(config, corpusPath, "sqlite", config.CacheRuns, args)

	result := BenchmarkResult{
		Corpus:      corpus,
		Command:     label,
		NoCacheTime: formatAverage(noCache),
		ColdTime:    "TIMEOUT",
		WarmTime:    "TIMEOUT",
	}
	if len(cached) > 0 {
		result.ColdTime = fmt.Sprintf("%.3fs", cached[0])
		result.WarmTime = formatAverage(cached[1:])
	}
	return result
}

// runBenchmark runs yomu numRuns times and returns the seconds of each successful run.
func runBenchmark(config BenchmarkConfig, corpusPath, cacheBackend string, numRuns int, args []string) []float64 {
	full := append([]string{}, args...)
	full = append(full, corpusPath,
		"--cache-backend", cacheBackend,
		"--workers", fmt.Sprint(config.Workers),
		"--emoji", "no",
	)

	var times []float64
	for range numRuns {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		output, err := exec.CommandContext(ctx, "yomu", full...).CombinedOutput()
		cancel()
		if err == nil && strings.Contains(string(output), "Scoring completed in") {
			times = append(times, time.Since(start).Seconds())
		}
	}
	return times
}

func formatAverage(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("yomu_benchmark_%s.csv", time.Now().Format("20060102_150405")))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"corpus", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := writer.Write([]string{r.Corpus, r.Command, r.NoCacheTime, r.ColdTime, r.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// README: Benchmark runner for the quote engine; drives synthetic request permutations and prints throughput.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

type Config struct {
	Requests    int
	Concurrency int
	Strict      bool
}

func main() {
	cfg := loadConfig()

	snap := buildSnapshot()
	reqs := buildRequests()

	var processed, failures int64
	start := time.Now()

	var wg sync.WaitGroup
	perWorker := cfg.Requests / cfg.Concurrency
	for w := 0; w < cfg.Concurrency; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				req := reqs[(seed+i)%len(reqs)]
				if err := runCase(snap, req); err != nil {
					atomic.AddInt64(&failures, 1)
				}
				atomic.AddInt64(&processed, 1)
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	fmt.Println("== Summary ==")
	fmt.Printf("requests=%d concurrency=%d elapsed=%s quotes/sec=%.0f failures=%d\n",
		processed, cfg.Concurrency, elapsed.Round(time.Millisecond),
		float64(processed)/elapsed.Seconds(), failures)

	if failures > 0 && cfg.Strict {
		os.Exit(1)
	}
}

func loadConfig() Config {
	var cfg Config
	flag.IntVar(&cfg.Requests, "requests", envOrDefaultInt("SHUTTLEPORT_BENCH_REQUESTS", 100000), "Total quote computations")
	flag.IntVar(&cfg.Concurrency, "concurrency", envOrDefaultInt("SHUTTLEPORT_BENCH_CONCURRENCY", 8), "Concurrent workers")
	flag.BoolVar(&cfg.Strict, "strict", false, "Exit non-zero on invariant failures")
	flag.Parse()
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return cfg
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// Command eratos-parallel counts the primes in [2, N] on a pool of worker
// goroutines and prints a machine-parseable summary line:
//
//	N=<N> threads=<T> count=<count> time_sec=<elapsed>
//
// N is the first positional argument (default 10^8); the thread count T is
// the second (default 4).
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"eratos"
	log "github.com/sirupsen/logrus"
)

const (
	defaultMax     = 100_000_000
	defaultWorkers = 4
)

func main() {
	max := uint64(defaultMax)
	if len(os.Args) > 1 {
		v, err := strconv.ParseUint(os.Args[1], 10, 64)
		if err != nil {
			log.Fatalf("invalid N %q: %v", os.Args[1], err)
		}
		max = v
	}
	workers := defaultWorkers
	if len(os.Args) > 2 {
		t, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("invalid thread count %q: %v", os.Args[2], err)
		}
		if t < 1 {
			t = 1
		}
		workers = t
	}
	db, err := eratos.Open("", eratos.MemBacked())
	if err != nil {
		log.Fatalf("failed to open: %v", err)
	}
	defer db.Close()
	res, err := db.NewCount().WhereMax(max).WithWorkers(workers).Exec(context.Background())
	if err != nil {
		log.Fatalf("count failed: %v", err)
	}
	fmt.Printf("N=%d threads=%d count=%d time_sec=%.6f\n", max, workers, res.Count, res.Elapsed.Seconds())
}

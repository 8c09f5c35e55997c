// Command eratos-serial counts the primes in [2, N] on a single worker and
// prints a machine-parseable summary line:
//
//	N=<N> count=<count> time_sec=<elapsed>
//
// N is the first positional argument, defaulting to 10^8.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"eratos"
	log "github.com/sirupsen/logrus"
)

const defaultMax = 100_000_000

func main() {
	max := uint64(defaultMax)
	if len(os.Args) > 1 {
		v, err := strconv.ParseUint(os.Args[1], 10, 64)
		if err != nil {
			log.Fatalf("invalid N %q: %v", os.Args[1], err)
		}
		max = v
	}
	db, err := eratos.Open("", eratos.MemBacked())
	if err != nil {
		log.Fatalf("failed to open: %v", err)
	}
	defer db.Close()
	res, err := db.NewCount().WhereMax(max).Exec(context.Background())
	if err != nil {
		log.Fatalf("count failed: %v", err)
	}
	fmt.Printf("N=%d count=%d time_sec=%.6f\n", max, res.Count, res.Elapsed.Seconds())
}

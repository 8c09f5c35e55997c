package eratos_test

import (
	"context"
	"errors"

	"eratos"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// reference counts of primes <= N.
var piRef = map[uint64]int64{
	0:         0,
	1:         0,
	2:         1,
	3:         2,
	10:        4,
	100:       25,
	1000:      168,
	1_000_000: 78498,
}

func openMem(opts ...eratos.Option) eratos.DB {
	db, err := eratos.Open("", append([]eratos.Option{eratos.MemBacked()}, opts...)...)
	Expect(err).ToNot(HaveOccurred())
	return db
}

var _ = Describe("Count", func() {
	var (
		ctx context.Context
		db  eratos.DB
	)
	BeforeEach(func() {
		ctx = context.Background()
		db = openMem()
	})
	AfterEach(func() {
		Expect(db.Close()).To(Succeed())
	})
	Describe("Reference values", func() {
		It("Should match the known prime counts", func() {
			for n, want := range piRef {
				res, err := db.NewCount().WhereMax(n).Exec(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(res.Count).To(Equal(want), "N=%d", n)
			}
		})
		It("Should treat N below 2 as a defined zero, not an error", func() {
			res, err := db.NewCount().WhereMax(0).Exec(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Count).To(Equal(int64(0)))
		})
	})
	Describe("Parallel equivalence", func() {
		It("Should produce the serial count on every worker count", func() {
			for _, n := range []uint64{2, 1000, 99_991, 1_000_000} {
				serial, err := db.NewCount().WhereMax(n).Exec(ctx)
				Expect(err).ToNot(HaveOccurred())
				for _, workers := range []int{1, 2, 4, 8} {
					par, err := db.NewCount().WhereMax(n).WithWorkers(workers).Exec(ctx)
					Expect(err).ToNot(HaveOccurred())
					Expect(par.Count).To(Equal(serial.Count), "N=%d workers=%d", n, workers)
				}
			}
		})
	})
	Describe("Idempotence", func() {
		It("Should return identical counts across repeated runs", func() {
			first, err := db.NewCount().WhereMax(100_000).WithWorkers(4).Exec(ctx)
			Expect(err).ToNot(HaveOccurred())
			for i := 0; i < 5; i++ {
				res, err := db.NewCount().WhereMax(100_000).WithWorkers(4).Exec(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(res.Count).To(Equal(first.Count))
			}
		})
	})
	Describe("Segment width invariance", func() {
		It("Should count identically for any segment width", func() {
			counts := make([]int64, 0, 3)
			for _, width := range []uint64{1 << 10, 1 << 20, 999} {
				wdb := openMem(eratos.WithSegmentWidth(width))
				res, err := wdb.NewCount().WhereMax(250_000).WithWorkers(4).Exec(ctx)
				Expect(err).ToNot(HaveOccurred())
				counts = append(counts, res.Count)
				Expect(wdb.Close()).To(Succeed())
			}
			Expect(counts[1]).To(Equal(counts[0]))
			Expect(counts[2]).To(Equal(counts[0]))
		})
	})
	Describe("Segment boundaries", func() {
		It("Should not miscount when N lands on, below, or above a boundary", func() {
			// With width 1024 the first segment covers raw values [3, 1026].
			wdb := openMem(eratos.WithSegmentWidth(1 << 10))
			defer func() { Expect(wdb.Close()).To(Succeed()) }()
			for _, n := range []uint64{1025, 1026, 1027} {
				want := naiveCount(n)
				for _, workers := range []int{1, 4} {
					res, err := wdb.NewCount().WhereMax(n).WithWorkers(workers).Exec(ctx)
					Expect(err).ToNot(HaveOccurred())
					Expect(res.Count).To(Equal(want), "N=%d workers=%d", n, workers)
				}
			}
		})
	})
	Describe("Larger ranges", func() {
		It("Should match the reference count for ten million", func() {
			res, err := db.NewCount().WhereMax(10_000_000).WithWorkers(8).Exec(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Count).To(Equal(int64(664_579)))
		})
	})
	Describe("Validation", func() {
		It("Should reject a query without a bound", func() {
			_, err := db.NewCount().Exec(ctx)
			Expect(err).To(HaveOccurred())
			var e eratos.Error
			Expect(errors.As(err, &e)).To(BeTrue())
			Expect(e.Type).To(Equal(eratos.ErrInvalidQuery))
		})
	})
})

func naiveCount(n uint64) int64 {
	var count int64
	for v := uint64(2); v <= n; v++ {
		prime := true
		for d := uint64(2); d*d <= v; d++ {
			if v%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			count++
		}
	}
	return count
}

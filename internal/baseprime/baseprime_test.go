package baseprime_test

import (
	"eratos/internal/baseprime"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func naivePrimes(limit uint64) []uint64 {
	var out []uint64
	for n := uint64(2); n <= limit; n++ {
		prime := true
		for d := uint64(2); d*d <= n; d++ {
			if n%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			out = append(out, n)
		}
	}
	return out
}

var _ = Describe("BasePrime", func() {
	Describe("Primes", func() {
		It("Should return an empty sequence below 2", func() {
			Expect(baseprime.Primes(0)).To(BeEmpty())
			Expect(baseprime.Primes(1)).To(BeEmpty())
		})
		It("Should return the single prime at limit 2", func() {
			Expect(baseprime.Primes(2)).To(Equal([]uint64{2}))
		})
		It("Should generate the exact prefix of the prime sequence", func() {
			for _, limit := range []uint64{3, 10, 31, 97, 100, 541, 1000} {
				Expect(baseprime.Primes(limit)).To(Equal(naivePrimes(limit)),
					"limit %d", limit)
			}
		})
		It("Should include a prime limit itself", func() {
			primes := baseprime.Primes(97)
			Expect(primes[len(primes)-1]).To(Equal(uint64(97)))
		})
	})
	Describe("Limit", func() {
		It("Should return the floor of the square root", func() {
			Expect(baseprime.Limit(0)).To(Equal(uint64(0)))
			Expect(baseprime.Limit(1)).To(Equal(uint64(1)))
			Expect(baseprime.Limit(3)).To(Equal(uint64(1)))
			Expect(baseprime.Limit(4)).To(Equal(uint64(2)))
			Expect(baseprime.Limit(99)).To(Equal(uint64(9)))
			Expect(baseprime.Limit(100)).To(Equal(uint64(10)))
			Expect(baseprime.Limit(1_000_000)).To(Equal(uint64(1000)))
		})
		It("Should stay exact around perfect squares of large values", func() {
			for _, r := range []uint64{1 << 15, 1<<20 + 3, 99_999} {
				Expect(baseprime.Limit(r * r)).To(Equal(r))
				Expect(baseprime.Limit(r*r - 1)).To(Equal(r - 1))
				Expect(baseprime.Limit(r*r + 1)).To(Equal(r))
			}
		})
	})
})

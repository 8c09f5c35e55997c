// Package baseprime generates the compact base-prime set shared by every
// segment computation: the primes up to the floor of the square root of the
// sieve bound. Any composite within the bound has a factor in this set, so it
// is sufficient for marking every segment.
package baseprime

import "math"

// Primes returns the ascending sequence of primes <= limit using a classic
// sieve. A limit below 2 yields an empty sequence.
func Primes(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}
	prime := make([]bool, limit+1)
	for i := range prime {
		prime[i] = true
	}
	prime[0], prime[1] = false, false
	for i := uint64(2); i*i <= limit; i++ {
		if !prime[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			prime[j] = false
		}
	}
	out := make([]uint64, 0, limit/2)
	for i := uint64(2); i <= limit; i++ {
		if prime[i] {
			out = append(out, i)
		}
	}
	return out
}

// Limit returns floor(sqrt(n)), the base-prime bound for a sieve over [2, n].
// The float result is corrected so the contract holds exactly for all uint64
// inputs, not just those math.Sqrt can represent.
func Limit(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

package seq_test

import (
	"bytes"
	"sync"

	"eratos/internal/seq"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sequence", func() {
	Describe("Add", func() {
		It("Should keep values ascending regardless of insertion order", func() {
			s := seq.New()
			s.Add(11, 13)
			s.Add(2, 3, 5, 7)
			Expect(s.Values()).To(Equal([]uint64{2, 3, 5, 7, 11, 13}))
		})
		It("Should deduplicate repeated values", func() {
			s := seq.New()
			s.Add(2, 3)
			s.Add(3, 5)
			Expect(s.Cardinality()).To(Equal(uint64(3)))
		})
		It("Should tolerate concurrent adders", func() {
			s := seq.New()
			wg := sync.WaitGroup{}
			for w := 0; w < 8; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					for v := uint64(w); v < 10_000; v += 8 {
						s.Add(v)
					}
				}(w)
			}
			wg.Wait()
			Expect(s.Cardinality()).To(Equal(uint64(10_000)))
		})
	})
	Describe("Flush", func() {
		It("Should round-trip through its binary form", func() {
			s := seq.New()
			s.Add(2, 3, 5, 7, 104_729)
			b := new(bytes.Buffer)
			Expect(s.Flush(b)).To(Succeed())
			loaded := seq.New()
			Expect(loaded.Load(bytes.NewReader(b.Bytes()))).To(Succeed())
			Expect(loaded.Values()).To(Equal(s.Values()))
		})
	})
})

package eratos_test

import (
	"context"

	"eratos"
	"eratos/alamos"
	"eratos/internal/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Perf", func() {
	It("Should sieve ten million with a worker pool", func() {
		db := openMem()
		defer func() { Expect(db.Close()).To(Succeed()) }()
		testutil.RunDurationExp("count-10M-parallel", 3, func() {
			res, err := db.NewCount().WhereMax(10_000_000).WithWorkers(8).Exec(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Count).To(Equal(int64(664_579)))
		})
	})
	It("Should run instrumented without errors", func() {
		db := openMem(eratos.WithExperiment(alamos.New("perf")))
		defer func() { Expect(db.Close()).To(Succeed()) }()
		_, err := db.NewCount().WhereMax(1_000_000).WithWorkers(4).Exec(context.Background())
		Expect(err).ToNot(HaveOccurred())
	})
})

package eratos_test

import (
	"context"

	"eratos"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Tracing", func() {
	var ctx context.Context
	BeforeEach(func() {
		ctx = context.Background()
	})
	It("Should emit trace lines through the logger when verbose", func() {
		core, observed := observer.New(zap.InfoLevel)
		db := openMem(
			eratos.WithVerbose(),
			eratos.WithLogger(zap.New(core)),
			eratos.WithSegmentWidth(1<<12),
		)
		_, err := db.NewCount().WhereMax(100_000).WithWorkers(4).Exec(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(db.Close()).To(Succeed())
		Expect(observed.Len()).To(BeNumerically(">", 0))
	})
	It("Should never let trace volume or saturation change a count", func() {
		quiet := openMem(eratos.WithSegmentWidth(1 << 10))
		want, err := quiet.NewCount().WhereMax(250_000).WithWorkers(4).Exec(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(quiet.Close()).To(Succeed())

		// A tiny width and a starved limiter force heavy emission and heavy
		// dropping at once.
		noisy := openMem(
			eratos.WithVerbose(),
			eratos.WithSegmentWidth(1<<10),
			eratos.WithTraceRate(1, 1),
		)
		got, err := noisy.NewCount().WhereMax(250_000).WithWorkers(4).Exec(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(noisy.Close()).To(Succeed())
		Expect(got.Count).To(Equal(want.Count))
	})
})

package seismic_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/quakesim/internal/seismic"
)

func run(p seismic.Params) *seismic.Result {
	result, err := seismic.New().Run(context.Background(), p)
	Expect(err).NotTo(HaveOccurred())
	return result
}

func boundary(g *seismic.Grid) []float64 {
	nz, nx := g.Shape()
	var edge []float64
	edge = append(edge, g.Row(0)...)
	edge = append(edge, g.Row(nz-1)...)
	for iz := 0; iz < nz; iz++ {
		edge = append(edge, g.At(iz, 0), g.At(iz, nx-1))
	}
	return edge
}

var _ = Describe("Simulator", func() {
	for _, scheme := range seismic.Schemes {
		scheme := scheme

		Context("with the "+scheme.String()+" scheme", func() {
			var p seismic.Params

			BeforeEach(func() {
				p = seismic.DefaultParams()
				p.NX, p.NZ = 40, 30
				p.SourceX, p.SourceZ = seismic.DefaultSource(p.NX, p.NZ)
				p.NT = 120
				p.Scheme = scheme
			})

			It("is deterministic", func() {
				a := run(p)
				b := run(p)
				Expect(a.Grid.Equal(b.Grid)).To(BeTrue())
			})

			It("never writes the boundary", func() {
				Expect(boundary(run(p).Grid)).To(HaveEach(BeZero()))
			})

			It("preserves the grid shape", func() {
				nz, nx := run(p).Grid.Shape()
				Expect(nz).To(Equal(p.NZ))
				Expect(nx).To(Equal(p.NX))
			})

			It("stays zero without a source amplitude", func() {
				p.SourceAmplitude = 0
				Expect(run(p).Grid.Values()).To(HaveEach(BeZero()))
			})

			It("spreads energy away from the source", func() {
				g := run(p).Grid
				Expect(g.At(p.SourceZ, p.SourceX+5)).NotTo(BeZero())
				Expect(g.At(p.SourceZ+5, p.SourceX)).NotTo(BeZero())
			})

			It("stays finite for the reference scenario", func() {
				d := seismic.DefaultParams()
				d.Scheme = scheme
				result := run(d)
				Expect(result.Grid.IsFinite()).To(BeTrue())
				Expect(result.StepsTaken).To(Equal(999))
			})
		})
	}

	Describe("source injection", func() {
		It("leaves only the source cell set", func() {
			p := seismic.DefaultParams()
			g, err := seismic.Initialize(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(seismic.InjectSource(g, p)).To(Succeed())

			Expect(g.At(25, 50)).To(Equal(1.0))
			g.Set(25, 50, 0)
			Expect(g.Values()).To(HaveEach(BeZero()))
		})
	})

	Describe("the single-buffer reference scheme", func() {
		It("matches one explicit step for nt=2", func() {
			p := seismic.DefaultParams()
			p.NT = 2
			viaRun := run(p).Grid

			s := seismic.New()
			Expect(s.Reset(p)).To(Succeed())
			s.Step()
			Expect(s.Grid().Equal(viaRun)).To(BeTrue())
		})

		It("differs from the double-buffered variant after the first step", func() {
			p := seismic.DefaultParams()
			p.NT = 3
			inPlace := run(p).Grid
			p.Scheme = seismic.SchemeDiffusive
			diffusive := run(p).Grid
			Expect(inPlace.Equal(diffusive)).To(BeFalse())
		})
	})

	Describe("configuration errors", func() {
		It("rejects grids smaller than the stencil", func() {
			p := seismic.DefaultParams()
			p.NX = 2
			_, err := seismic.New().Run(context.Background(), p)
			Expect(err).To(MatchError(seismic.ErrInvalidConfiguration))
		})

		It("rejects a source outside the interior", func() {
			p := seismic.DefaultParams()
			p.SourceZ = p.NZ - 1
			_, err := seismic.New().Run(context.Background(), p)
			Expect(err).To(MatchError(seismic.ErrInvalidConfiguration))
		})
	})
})

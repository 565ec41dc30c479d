package spectral_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurosim/internal/spectral"
)

// passthrough leaves the signal untouched, isolating the spectral math
// from any particular band-pass implementation.
type passthrough struct{}

func (passthrough) Filter(s [][]float64) [][]float64 { return s }

func sinusoid(n int, cycles float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2.0 * math.Pi * cycles * float64(i) / float64(n))
	}
	return out
}

var _ = Describe("Conv", func() {
	It("is the identity under a unit kernel", func() {
		signal := []float64{1.0, -2.5, 3.0, 0.0, 7.25}
		out := spectral.Conv(signal, []float64{1.0})
		Expect(out).To(Equal(signal))
	})

	It("preserves signal length for wider kernels", func() {
		signal := make([]float64, 11)
		Expect(spectral.Conv(signal, []float64{0.25, 0.5, 0.25})).To(HaveLen(11))
		Expect(spectral.Conv(signal, []float64{1, 1, 1, 1})).To(HaveLen(11))
	})

	It("reproduces a constant in the interior under a normalized kernel", func() {
		signal := []float64{4, 4, 4, 4, 4, 4, 4}
		out := spectral.Conv(signal, []float64{0.25, 0.5, 0.25})
		for i := 1; i < len(out)-1; i++ {
			Expect(out[i]).To(BeNumerically("~", 4.0, 1e-12))
		}
	})
})

var _ = Describe("GaussFilt", func() {
	uniform := func(n int, dt float64) []float64 {
		t := make([]float64, n)
		for i := range t {
			t[i] = float64(i) * dt
		}
		return t
	}

	It("preserves a constant signal exactly, edges included", func() {
		t := uniform(50, 0.01)
		z := make([]float64, 50)
		for i := range z {
			z[i] = 3.5
		}
		out := spectral.GaussFilt(t, z, 0.05)
		for _, v := range out {
			Expect(v).To(BeNumerically("~", 3.5, 1e-9))
		}
	})

	It("returns a copy when sigma is not positive", func() {
		t := uniform(4, 1.0)
		z := []float64{1, 2, 3, 4}
		out := spectral.GaussFilt(t, z, 0)
		Expect(out).To(Equal(z))
		out[0] = 99
		Expect(z[0]).To(Equal(1.0))
	})

	It("neither amplifies nor attenuates a slow signal away from the edges", func() {
		t := uniform(200, 0.01)
		z := make([]float64, len(t))
		for i, v := range t {
			z[i] = math.Sin(2.0 * math.Pi * 0.2 * v)
		}
		out := spectral.GaussFilt(t, z, 0.02)
		for i := 40; i < 160; i++ {
			Expect(out[i]).To(BeNumerically("~", z[i], 0.01))
		}
	})

	It("attenuates a spike without moving its peak", func() {
		t := uniform(101, 0.01)
		z := make([]float64, 101)
		z[50] = 1.0
		out := spectral.GaussFilt(t, z, 0.05)
		best := 0
		for i, v := range out {
			if v > out[best] {
				best = i
			}
		}
		Expect(best).To(Equal(50))
		Expect(out[50]).To(BeNumerically("<", 1.0))
		Expect(out[50]).To(BeNumerically(">", 0.0))
	})
})

var _ = Describe("FilterPowerSpectra", func() {
	It("concentrates power of a pure tone at its bin", func() {
		const n, k0 = 128, 10
		signal := [][]float64{sinusoid(n, k0)}
		power := spectral.FilterPowerSpectra(signal, 1.0, passthrough{})
		Expect(power).To(HaveLen(n / 2))

		best := 0
		for k := range power {
			if power[k][0] > power[best][0] {
				best = k
			}
		}
		Expect(best).To(Equal(k0))
	})

	It("keeps one column per region", func() {
		signal := [][]float64{sinusoid(64, 4), sinusoid(64, 9)}
		power := spectral.FilterPowerSpectra(signal, 2.0, passthrough{})
		Expect(power).To(HaveLen(32))
		Expect(power[0]).To(HaveLen(2))
	})
})

var _ = Describe("DominantFrequencies", func() {
	const n = 256
	const tr = 2.0

	It("locates a pure tone within one bin width", func() {
		const k0 = 12
		signal := [][]float64{sinusoid(n, k0)}
		peaks := spectral.DominantFrequencies(signal, tr, passthrough{})
		Expect(peaks).To(HaveLen(1))
		want := float64(k0) / (float64(n) * tr)
		binWidth := 1.0 / (float64(n) * tr)
		Expect(peaks[0]).To(BeNumerically("~", want, binWidth))
	})

	It("stays within a couple of bins for a peak near the low-frequency edge", func() {
		// Within a kernel half-width of the edge the smoothing pulls the
		// argmax toward the boundary; the shift stays small.
		const k0 = 17
		signal := [][]float64{sinusoid(512, k0)}
		peaks := spectral.DominantFrequencies(signal, tr, passthrough{})
		want := float64(k0) / (512.0 * tr)
		binWidth := 1.0 / (512.0 * tr)
		Expect(peaks[0]).To(BeNumerically("<=", want))
		Expect(peaks[0]).To(BeNumerically("~", want, 3*binWidth))
	})

	It("resolves distinct tones per region", func() {
		signal := [][]float64{sinusoid(n, 8), sinusoid(n, 20)}
		peaks := spectral.DominantFrequencies(signal, tr, passthrough{})
		Expect(peaks[1]).To(BeNumerically(">", peaks[0]))
	})
})

var _ = Describe("cohort averaging", func() {
	const n = 128
	const tr = 1.0

	It("matches the single-subject result for identical subjects", func() {
		signal := [][]float64{sinusoid(n, 7)}
		single := spectral.DominantFrequencies(signal, tr, passthrough{})
		stacked := spectral.DominantFrequenciesStacked(
			[][][]float64{signal, signal, signal}, tr, passthrough{})
		Expect(stacked).To(Equal(single))
	})

	It("truncates subjects to the shortest common length", func() {
		short := [][]float64{sinusoid(64, 5)}
		long := [][]float64{sinusoid(n, 10)}
		power := spectral.DominantFrequenciesStacked(
			[][][]float64{long, short}, tr, passthrough{})
		Expect(power).To(HaveLen(1))

		truncSelf := spectral.DominantFrequenciesStacked(
			[][][]float64{short, short}, tr, passthrough{})
		Expect(truncSelf).To(Equal(
			spectral.DominantFrequencies(short, tr, passthrough{})))
	})

	It("accepts a named-subject map", func() {
		signal := [][]float64{sinusoid(n, 7)}
		byName := map[string][][]float64{"s01": signal, "s02": signal}
		Expect(spectral.DominantFrequenciesCohort(byName, tr, passthrough{})).
			To(Equal(spectral.DominantFrequencies(signal, tr, passthrough{})))
	})
})

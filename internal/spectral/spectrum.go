package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// SmoothSigma is the Gaussian smoothing width (Hz) applied to averaged
// power-vs-frequency curves before peak extraction.
//
// Peak extraction is bin-exact only when the frequency-bin width is not
// much smaller than this sigma and the peak sits more than a kernel
// half-width (about 5*sigma) above the low-frequency edge. For peaks
// closer to the edge the edge-corrected smoothing pulls the argmax a
// bin or two toward the boundary.
const SmoothSigma = 0.01

// BandPass is the consumed band-pass filter capability. Filter operates
// over the time axis of a regions × time series.
type BandPass interface {
	Filter(signal [][]float64) [][]float64
}

// FilterPowerSpectra band-pass filters a regions × time series and
// returns the per-region power spectrum over the first floor(T/2)
// frequency bins, normalized by (T/2)/tr. tr is the sampling interval in
// seconds.
func FilterPowerSpectra(signal [][]float64, tr float64, bpf BandPass) [][]float64 {
	filtered := bpf.Filter(signal)
	nRegions := len(filtered)
	tmax := len(filtered[0])
	nFreq := tmax / 2
	norm := float64(tmax) / 2.0 / tr

	power := make([][]float64, nFreq)
	for k := range power {
		power[k] = make([]float64, nRegions)
	}
	for r, series := range filtered {
		spec := fft.FFTReal(series)
		for k := 0; k < nFreq; k++ {
			mag := cmplx.Abs(spec[k])
			power[k][r] = mag * mag / norm
		}
	}
	return power
}

// DominantFrequencies computes, per region, the frequency of peak
// smoothed power for a single subject. See SmoothSigma for the
// resolution this is exact in.
func DominantFrequencies(signal [][]float64, tr float64, bpf BandPass) []float64 {
	return DominantFrequenciesStacked([][][]float64{signal}, tr, bpf)
}

// DominantFrequenciesCohort averages power spectra across named subjects
// before peak extraction. Subjects with longer recordings are truncated
// to the shortest common length rather than erroring.
func DominantFrequenciesCohort(subjects map[string][][]float64, tr float64, bpf BandPass) []float64 {
	stacked := make([][][]float64, 0, len(subjects))
	for _, s := range subjects {
		stacked = append(stacked, s)
	}
	return DominantFrequenciesStacked(stacked, tr, bpf)
}

// DominantFrequenciesStacked averages power spectra across a stacked
// subjects × regions × time array before peak extraction.
func DominantFrequenciesStacked(subjects [][][]float64, tr float64, bpf BandPass) []float64 {
	power, freqs := averagedSpectra(subjects, tr, bpf)
	nRegions := len(power[0])

	peak := make([]float64, nRegions)
	col := make([]float64, len(power))
	for r := 0; r < nRegions; r++ {
		for k := range power {
			col[k] = power[k][r]
		}
		smoothed := GaussFilt(freqs, col, SmoothSigma)
		best := 0
		for k, v := range smoothed {
			if v > smoothed[best] {
				best = k
			}
		}
		peak[r] = freqs[best]
	}
	return peak
}

func averagedSpectra(subjects [][][]float64, tr float64, bpf BandPass) (power [][]float64, freqs []float64) {
	tmax := len(subjects[0][0])
	for _, s := range subjects {
		for _, series := range s {
			if len(series) < tmax {
				tmax = len(series)
			}
		}
	}

	var sum [][]float64
	for _, s := range subjects {
		truncated := make([][]float64, len(s))
		for r, series := range s {
			truncated[r] = series[:tmax]
		}
		p := FilterPowerSpectra(truncated, tr, bpf)
		if sum == nil {
			sum = p
			continue
		}
		for k := range sum {
			for r := range sum[k] {
				sum[k][r] += p[k][r]
			}
		}
	}

	n := float64(len(subjects))
	for k := range sum {
		for r := range sum[k] {
			sum[k][r] /= n
		}
	}

	ts := float64(tmax) * tr
	freqs = make([]float64, len(sum))
	for k := range freqs {
		freqs[k] = float64(k) / ts
	}
	return sum, freqs
}

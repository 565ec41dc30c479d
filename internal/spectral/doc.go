// Package spectral estimates narrowband power spectra of multi-region
// time series.
//
// The pipeline band-pass filters each region's series, computes
// Nyquist-limited power spectra via FFT, averages across subjects when a
// cohort is supplied, smooths each power-vs-frequency curve with a
// Gaussian kernel and reduces it to the per-region frequency of peak
// power:
//
//	peaks := spectral.DominantFrequencies(series, tr, filters.NewButterworth(tr, 0.04, 0.07))
//
// The dominant-frequency vector is the summary statistic compared against
// empirical spectral peaks during model fitting.
package spectral

// Package shedding detects periodic vortex shedding in velocity probe records.
//
// A point probe placed in the wake of a bluff body or behind a channel
// junction produces a velocity time series. When the flow sheds vortices,
// that series carries a narrowband oscillation whose frequency relates to
// the geometry through the Strouhal number:
//
//	St = f * L / U
//
// where f is the shedding frequency in Hz, L the characteristic length in
// meters, and U the mean velocity in m/s. Shear-layer shedding typically
// falls in the range 0 < St < 1.
//
// # Usage
//
// One-shot analysis from a probe record:
//
//	res, err := shedding.Analyze(velocity, shedding.Config{SampleRate: 5000}, shedding.Flow{
//		Length:   100e-6,
//		Velocity: 0.33,
//	})
//	fmt.Println(res.PeakFreq, res.Strouhal, res.Shedding)
//
// For direct access to the spectrum, use [Welch] and inspect the result:
//
//	spec, err := shedding.Welch(velocity, shedding.Config{SampleRate: 5000})
//	freq, power := spec.Peak()
//
// # Method
//
// The spectrum is a Welch average of overlapped, windowed periodograms.
// The record is detrended with a least-squares line first, then split into
// half-overlapping segments. Each segment has its mean removed, is tapered
// with the configured window, and is transformed with an FFT. Squared
// magnitudes are averaged over segments and scaled to a one-sided power
// spectral density:
//
//	P(f) = |X(f)|² / (fs * sum(w²))
//
// with all bins except DC and Nyquist doubled. Averaging over segments
// trades frequency resolution for variance reduction, which matters for
// the short, noisy records a transient solver produces.
package shedding

package shedding

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-dsp/stats/frequency"
	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by shedding functions.
var (
	ErrEmptySignal       = errors.New("shedding: signal is empty")
	ErrInvalidSampleRate = errors.New("shedding: sample rate must be positive")
	ErrShortSignal       = errors.New("shedding: signal shorter than one segment")
	ErrBadSegment        = errors.New("shedding: segment must have at least two samples")
)

const (
	defaultSegmentSize = 512

	// Below this rate the spectral estimate is usually too coarse to
	// resolve a shedding peak from a transient solver record.
	lowRateHz = 100.0
)

// Config holds spectral estimation parameters.
type Config struct {
	SampleRate  float64     // probe sampling rate in Hz, required
	SegmentSize int         // samples per segment, default 512
	WindowType  window.Type // taper applied per segment, default Hann
}

// Spectrum is a one-sided power spectral density estimate.
type Spectrum struct {
	Frequencies []float64 // bin center frequencies in Hz
	Power       []float64 // power density per bin, units²/Hz
	SampleRate  float64
	SegmentSize int
	Segments    int  // periodograms averaged
	LowRate     bool // sampling rate below the recommended minimum
}

// Peak returns the frequency and power of the strongest non-DC bin.
func (s *Spectrum) Peak() (freqHz, power float64) {
	best := -1

	for i := 1; i < len(s.Power); i++ {
		if best < 0 || s.Power[i] > power {
			best = i
			power = s.Power[i]
		}
	}

	if best < 0 {
		return 0, 0
	}

	return s.Frequencies[best], power
}

// Stats computes frequency-domain shape descriptors from the estimate.
// The PSD is converted to a magnitude spectrum (square root per bin)
// before delegation.
func (s *Spectrum) Stats() frequency.Stats {
	mag := make([]float64, len(s.Power))
	for i, p := range s.Power {
		mag[i] = sqrtPositive(p)
	}

	return frequency.Calculate(mag, s.SampleRate)
}

// Welch estimates the power spectral density of a probe record.
//
// The record is detrended, split into half-overlapping segments of
// cfg.SegmentSize samples, tapered, and transformed. Segments are
// zero-padded to the next power of two when the segment size is not one
// already. The returned spectrum has fftSize/2+1 bins spaced
// SampleRate/fftSize apart.
func Welch(data []float64, cfg Config) (*Spectrum, error) {
	if len(data) == 0 {
		return nil, ErrEmptySignal
	}

	cfg = normalizeConfig(cfg)

	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidSampleRate, cfg.SampleRate)
	}

	seg := cfg.SegmentSize
	if seg < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSegment, seg)
	}

	if len(data) < seg {
		return nil, fmt.Errorf("%w: need %d samples, got %d", ErrShortSignal, seg, len(data))
	}

	detrended := Detrend(data)

	coeffs := window.Generate(cfg.WindowType, seg, window.WithPeriodic())
	winPower := vecmath.DotProduct(coeffs, coeffs)

	fftSize := nextPowerOf2(seg)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("shedding: failed to create FFT plan: %w", err)
	}

	nBins := fftSize/2 + 1
	psd := make([]float64, nBins)
	segBuf := make([]float64, seg)
	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)

	hop := seg / 2
	count := 0

	for start := 0; start+seg <= len(detrended); start += hop {
		copy(segBuf, detrended[start:start+seg])
		removeMean(segBuf)
		vecmath.MulBlockInPlace(segBuf, coeffs)

		for i := range in {
			if i < seg {
				in[i] = complex(segBuf[i], 0)
			} else {
				in[i] = 0
			}
		}

		err = plan.Forward(out, in)
		if err != nil {
			return nil, fmt.Errorf("shedding: fft failed: %w", err)
		}

		for i := range nBins {
			x := out[i]
			psd[i] += real(x)*real(x) + imag(x)*imag(x)
		}

		count++
	}

	scale := 1 / (cfg.SampleRate * winPower * float64(count))
	vecmath.ScaleBlockInPlace(psd, scale)

	// One-sided spectrum: double everything except DC and Nyquist.
	for i := 1; i < nBins-1; i++ {
		psd[i] *= 2
	}

	freqs := make([]float64, nBins)
	df := cfg.SampleRate / float64(fftSize)

	for i := range freqs {
		freqs[i] = float64(i) * df
	}

	return &Spectrum{
		Frequencies: freqs,
		Power:       psd,
		SampleRate:  cfg.SampleRate,
		SegmentSize: seg,
		Segments:    count,
		LowRate:     cfg.SampleRate < lowRateHz,
	}, nil
}

// Detrend removes the least-squares line from data and returns a new slice.
// Records from a transient solver often carry a slow drift from the
// startup transient that would otherwise leak into the low bins.
func Detrend(data []float64) []float64 {
	out := make([]float64, len(data))

	n := len(data)
	if n == 0 {
		return out
	}

	mean := vecmath.Sum(data) / float64(n)

	if n == 1 {
		out[0] = data[0] - mean
		return out
	}

	// Centered abscissa keeps the normal equations diagonal.
	center := float64(n-1) / 2

	var crossSum, squareSum float64

	for i, v := range data {
		x := float64(i) - center
		crossSum += x * (v - mean)
		squareSum += x * x
	}

	slope := crossSum / squareSum

	for i, v := range data {
		out[i] = v - mean - slope*(float64(i)-center)
	}

	return out
}

func normalizeConfig(cfg Config) Config {
	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = defaultSegmentSize
	}

	if cfg.WindowType == 0 {
		cfg.WindowType = window.TypeHann
	}

	return cfg
}

func removeMean(buf []float64) {
	mean := vecmath.Sum(buf) / float64(len(buf))

	for i := range buf {
		buf[i] -= mean
	}
}

func sqrtPositive(v float64) float64 {
	if v <= 0 {
		return 0
	}

	return math.Sqrt(v)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

package voice

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

const (
	// FFTSize is the analysis window in samples; it yields FFTSize/2 bins.
	FFTSize = 256

	smoothingTimeConstant = 0.8
	minDecibels           = -100.0
	maxDecibels           = -30.0
)

// Analyser keeps the most recent FFTSize samples and reduces them to byte
// frequency magnitudes the way a browser AnalyserNode does: Blackman window,
// FFT, 1/N magnitude, exponential smoothing across calls, then a linear map
// of [minDecibels, maxDecibels] onto [0, 255].
//
// Write is called from the capture callback; the other methods from the game
// loop.
type Analyser struct {
	mu     sync.Mutex
	ring   []float64
	pos    int
	filled bool

	fft      *fourier.FFT
	frame    []float64
	coeffs   []complex128
	smoothed []float64
	bins     []uint8
}

func NewAnalyser() *Analyser {
	return &Analyser{
		ring:     make([]float64, FFTSize),
		fft:      fourier.NewFFT(FFTSize),
		frame:    make([]float64, FFTSize),
		coeffs:   make([]complex128, FFTSize/2+1),
		smoothed: make([]float64, FFTSize/2),
		bins:     make([]uint8, FFTSize/2),
	}
}

// Write appends time-domain samples in [-1, 1].
func (a *Analyser) Write(samples []float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, s := range samples {
		a.ring[a.pos] = s
		a.pos++
		if a.pos == len(a.ring) {
			a.pos = 0
			a.filled = true
		}
	}
}

// WritePCM16 appends little-endian signed 16-bit mono samples.
func (a *Analyser) WritePCM16(pcm []byte) {
	n := len(pcm) / 2
	if n == 0 {
		return
	}
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		s := int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8)
		samples[i] = float64(s) / 32768
	}
	a.Write(samples)
}

// ByteFrequencyData fills dst (len FFTSize/2) with the current bin values.
func (a *Analyser) ByteFrequencyData(dst []uint8) {
	a.analyse()
	copy(dst, a.bins)
}

// Loudness is the mean bin value, in [0, MaxLoudness].
func (a *Analyser) Loudness() float64 {
	a.analyse()
	sum := 0
	for _, b := range a.bins {
		sum += int(b)
	}
	return float64(sum) / float64(len(a.bins))
}

func (a *Analyser) analyse() {
	a.mu.Lock()
	// Oldest sample first.
	n := copy(a.frame, a.ring[a.pos:])
	copy(a.frame[n:], a.ring[:a.pos])
	a.mu.Unlock()

	window.Blackman(a.frame)
	a.coeffs = a.fft.Coefficients(a.coeffs, a.frame)

	scale := 1.0 / FFTSize
	rangeScale := MaxLoudness / (maxDecibels - minDecibels)
	for k := range a.smoothed {
		c := a.coeffs[k]
		mag := math.Hypot(real(c), imag(c)) * scale
		a.smoothed[k] = smoothingTimeConstant*a.smoothed[k] + (1-smoothingTimeConstant)*mag

		db := 20 * math.Log10(a.smoothed[k])
		if math.IsInf(db, -1) || math.IsNaN(db) {
			a.bins[k] = 0
			continue
		}
		v := math.Floor(rangeScale * (db - minDecibels))
		switch {
		case v < 0:
			a.bins[k] = 0
		case v > MaxLoudness:
			a.bins[k] = MaxLoudness
		default:
			a.bins[k] = uint8(v)
		}
	}
}

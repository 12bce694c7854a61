// Package assets synthesizes every sound effect at startup. The game ships
// no audio files; each effect is a short procedurally generated PCM clip.
package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	cfg "github.com/aarav-shukla07/stickman-fight/config"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator generates raw mono samples at unity gain. A non-zero sweep
// shifts the frequency linearly to freq+sweep over the clip.
func oscillator(waveType int, freq, sweep float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		f := freq
		if sweep != 0 && samples > 1 {
			f += sweep * float64(i) / float64(samples-1)
		}
		phase += f / float64(cfg.Audio.SampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(cfg.Audio.SampleRate))
	releaseSamples := int(releaseSec * float64(cfg.Audio.SampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mix adds b into a, scaled, extending a if needed.
func mix(a, b []float64, bScale float64) []float64 {
	if len(b) > len(a) {
		extended := make([]float64, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func concat(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

func durationToSamples(seconds float64) int {
	return int(seconds * float64(cfg.Audio.SampleRate))
}

// toPCM converts mono float samples to interleaved stereo 16-bit LE bytes,
// the format the ebiten audio context consumes.
func toPCM(in []float64, gain float64) []byte {
	out := make([]byte, len(in)*4)
	for i, s := range in {
		v := s * gain
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		i16 := int16(v * 32767)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(i16))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(i16))
	}
	return out
}

func jumpSound() []byte {
	samples := durationToSamples(0.12)
	buf := oscillator(waveSquare, 220, 260, samples)
	applyEnvelope(buf, 0.005, 0.08)
	return toPCM(buf, 0.35)
}

func swingSound() []byte {
	samples := durationToSamples(0.10)
	buf := oscillator(waveNoise, 0, 0, samples)
	applyEnvelope(buf, 0.01, 0.08)
	return toPCM(buf, 0.3)
}

func hitSound() []byte {
	samples := durationToSamples(0.09)
	thud := oscillator(waveSine, 140, -60, samples)
	crack := oscillator(waveNoise, 0, 0, samples/2)
	buf := mix(thud, crack, 0.5)
	applyEnvelope(buf, 0.002, 0.06)
	return toPCM(buf, 0.5)
}

func hitHeavySound() []byte {
	samples := durationToSamples(0.18)
	thud := oscillator(waveSine, 90, -50, samples)
	crack := oscillator(waveNoise, 0, 0, samples/2)
	buf := mix(thud, crack, 0.7)
	applyEnvelope(buf, 0.002, 0.12)
	return toPCM(buf, 0.65)
}

func menuNavigateSound() []byte {
	samples := durationToSamples(0.05)
	buf := oscillator(waveSquare, 660, 0, samples)
	applyEnvelope(buf, 0.004, 0.03)
	return toPCM(buf, 0.25)
}

func menuSelectSound() []byte {
	n1 := oscillator(waveSquare, 659.26, 0, durationToSamples(0.06))
	applyEnvelope(n1, 0.004, 0.02)
	n2 := oscillator(waveSquare, 987.77, 0, durationToSamples(0.10))
	applyEnvelope(n2, 0.004, 0.07)
	return toPCM(concat(n1, n2), 0.3)
}

func countdownSound() []byte {
	samples := durationToSamples(0.14)
	buf := oscillator(waveSine, 523.25, 0, samples)
	applyEnvelope(buf, 0.005, 0.1)
	return toPCM(buf, 0.4)
}

func koSound() []byte {
	samples := durationToSamples(0.5)
	boom := oscillator(waveSine, 70, -40, samples)
	rumble := oscillator(waveNoise, 0, 0, samples)
	buf := mix(boom, rumble, 0.4)
	applyEnvelope(buf, 0.002, 0.4)
	return toPCM(buf, 0.7)
}

var sfxBank map[cfg.SoundID][]byte

func init() {
	sfxBank = map[cfg.SoundID][]byte{
		cfg.SoundJump:         jumpSound(),
		cfg.SoundSwing:        swingSound(),
		cfg.SoundHit:          hitSound(),
		cfg.SoundHitHeavy:     hitHeavySound(),
		cfg.SoundMenuNavigate: menuNavigateSound(),
		cfg.SoundMenuSelect:   menuSelectSound(),
		cfg.SoundCountdown:    countdownSound(),
		cfg.SoundKO:           koSound(),
	}
}

// SFXData returns the PCM clip for a sound, nil for unknown IDs.
func SFXData(id cfg.SoundID) []byte {
	return sfxBank[id]
}

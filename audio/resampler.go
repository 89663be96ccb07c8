// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/diemonster/amiga-sample-convert/utils"
)

// Resampler converts src to dstRate using Catmull-Rom cubic interpolation
// over a four-frame window. Channel count is preserved.
//
// When downsampling, a one-pole low-pass tuned just under the target
// Nyquist frequency runs over the incoming frames so that energy above
// the new rate cannot alias into the output.
type Resampler struct {
	src      Source
	dstRate  int
	channels int

	// step is how far the read cursor moves through the source per output
	// frame, in source frames.
	step float64

	// Interpolation window: window[0]=t-1, [1]=t0, [2]=t+1, [3]=t+2.
	// frac is the position between window[1] and window[2].
	window [4][]float32
	have   [4]bool
	frac   float64
	primed bool
	eof    bool

	readBuf []float32

	// Anti-alias filter state, one pole per channel.
	aaAlpha  float32
	aaState  []float32
	filterOn bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	srcRate := src.SampleRate()
	step := float64(srcRate) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     step,
		readBuf:  make([]float32, channels),
		aaState:  make([]float32, channels),
		filterOn: step > 1,
	}

	if r.filterOn {
		// Cutoff slightly under the destination Nyquist leaves headroom
		// for the filter's slow rolloff.
		cutoff := 0.45 * float64(dstRate)
		dt := 1.0 / float64(srcRate)
		rc := 1.0 / (2 * math.Pi * cutoff)
		r.aaAlpha = float32(dt / (rc + dt))
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one source frame into dst, running the anti-alias
// filter over it. Returns false once the source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.readBuf)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return false, nil
	}

	copy(dst, r.readBuf[:n])
	if r.filterOn {
		for c := range r.channels {
			r.aaState[c] += r.aaAlpha * (dst[c] - r.aaState[c])
			dst[c] = r.aaState[c]
		}
	}

	return true, nil
}

// prime fills the interpolation window with the first source frames,
// duplicating the earliest frame into the t-1 slot.
func (r *Resampler) prime() error {
	for i := 1; i < 4; i++ {
		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			if i == 1 {
				return io.EOF
			}
			copy(r.window[i], r.window[i-1])
			r.have[i] = false
			continue
		}
		r.have[i] = true
	}

	copy(r.window[0], r.window[1])
	r.have[0] = r.have[1]
	if r.filterOn {
		copy(r.aaState, r.window[1])
	}
	r.primed = true

	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() (bool, error) {
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return false, err
	}
	if !ok {
		copy(r.window[3], r.window[2])
		r.have[3] = false
		return r.have[1] && r.have[2], nil
	}
	r.have[3] = true

	return true, nil
}

// ReadSamples produces samples at the destination rate. len(dst) must be
// a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	wanted := len(dst) / r.channels

	for written < wanted {
		for r.frac >= 1 {
			r.frac--
			ok, err := r.advance()
			if err != nil {
				return written * r.channels, err
			}
			if !ok {
				if written == 0 {
					return 0, io.EOF
				}
				return written * r.channels, io.EOF
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		x := float32(r.frac)
		for c := range r.channels {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}

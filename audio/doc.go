// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the conversion engine
// is built from.
//
// # Source Interface
//
// Everything that produces samples implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Format decoders, the MonoMixer and the Resampler all implement it, so
// they chain freely. Samples are normalized float32 in [-1.0, 1.0]; the
// 8-bit reduction happens only at the very end of a conversion, which
// keeps intermediate stages free of quantization error.
//
// # Building Blocks
//
//   - MonoMixer folds any channel count down to one by averaging frames
//   - Resampler converts sample rates with cubic interpolation and
//     anti-alias filtering on the way down
//   - BufferSource replays an in-memory buffer, bridging whole-buffer
//     operations back into a streaming chain
//   - ReadAll drains a source into a single slice
//   - Registry maps format names to decoders
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream ends; any other error is a
// real failure of the underlying source:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // process n samples
//	}
package audio

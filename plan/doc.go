// SPDX-License-Identifier: EPL-2.0

// Package plan turns a conversion configuration into the ordered list of
// processing stages an audio engine must apply.
//
// Stage order is fixed and semantically load-bearing; configuration only
// includes, excludes or parameterizes individual stages:
//
//  1. mixdown       - only when the source has more than one channel,
//     before trimming so per-channel trim points cannot diverge
//  2. trim-silence  - symmetric, -48 dBFS threshold
//  3. normalize/gain - before resampling so resampler overshoot cannot clip
//  4. resample      - anti-alias filtering is the engine's responsibility
//  5. lowpass       - fixed 3300 Hz "hardware character" filter, applied to
//     the final-rate signal
//  6. lowpass       - manual cutoff; stacks with the previous stage when
//     both are requested (intentional stacking, not mutual exclusion)
//  7. dither or truncate - always last, immediately before the 8-bit
//     reduction, since any processing after quantization would reintroduce
//     the errors dither masks
//
// Build validates the configuration before any engine work happens and
// returns a sentinel error for out-of-domain parameters.
package plan

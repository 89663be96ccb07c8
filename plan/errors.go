// SPDX-License-Identifier: EPL-2.0

package plan

import "errors"

var (
	ErrZeroSourceRate  = errors.New("source sample rate must be positive")
	ErrZeroTargetRate  = errors.New("target sample rate must be positive")
	ErrTargetRateRange = errors.New("target sample rate exceeds 65535 Hz")
	ErrNoChannels      = errors.New("source channel count must be positive")
	ErrNegativeCutoff  = errors.New("low-pass cutoff must be positive")
)

// SPDX-License-Identifier: EPL-2.0

package svx8

import "errors"

var (
	ErrTruncated      = errors.New("file shorter than 8SVX header region")
	ErrNotIFFForm     = errors.New("not an IFF FORM file")
	ErrNot8SVX        = errors.New("FORM type is not 8SVX")
	ErrBadVoiceHeader = errors.New("missing or malformed VHDR chunk")
	ErrBadBodyChunk   = errors.New("missing or malformed BODY chunk")
	ErrBodyTruncated  = errors.New("BODY size exceeds file contents")
)

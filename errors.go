package chunkedbytes

import "errors"

var (
	ErrBadSizeDigit  = errors.New("bad chunk size digit")
	ErrSizeOverflow  = errors.New("chunk size overflow")
	ErrBadTerminator = errors.New("bad chunk terminator")
	ErrTooLarge      = errors.New("chunk is too large")
)

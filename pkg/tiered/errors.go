package tiered

import "errors"

var (
	ErrNilStore = errors.New("tiered cache requires a remote store")
	ErrEncode   = errors.New("failed to encode cache value")
	ErrDecode   = errors.New("failed to decode cache value")
	ErrStore    = errors.New("remote cache store failed")
)

package memory

import "errors"

var (
	errStoreUnavailable = errors.New("store unavailable")
	errOutboxRowMissing = errors.New("outbox row not found")
)

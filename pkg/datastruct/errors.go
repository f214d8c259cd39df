package datastruct

import "go.llib.dev/containerkit/pkg/errorkit"

const (
	// ErrIndexOutOfBounds is the panic cause of the fail-fast index accessors
	// when the index falls outside of the valid [0, Len) range.
	ErrIndexOutOfBounds errorkit.Error = "IndexOutOfBounds"
	// ErrKeyNotFound is the panic cause of the fail-fast key accessors
	// when the demanded key is absent from the container.
	ErrKeyNotFound errorkit.Error = "KeyNotFound"
)

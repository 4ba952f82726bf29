package runtime

import (
	"errors"
	"fmt"
)

var (
	// ErrContainerNotFound means the container id did not resolve.
	ErrContainerNotFound = errors.New("container not found")
	// ErrAlreadyMounted means Mount was called on a mounted Program.
	ErrAlreadyMounted = errors.New("program already mounted")
	// ErrReentrantSignal is the panic value when a view invokes a signal
	// callback while it is being rendered.
	ErrReentrantSignal = errors.New("signal invoked during render")
)

// MountError is returned by Mount. Nothing is rendered when it occurs.
type MountError struct {
	ContainerID string
	Err         error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("mount %q: %v", e.ContainerID, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

//go:build !linux

package mpris

import "github.com/llehouerou/onair/internal/control"

// Receiver is a no-op on non-Linux platforms.
type Receiver struct{}

// NewReceiver returns a no-op receiver on non-Linux platforms.
func NewReceiver(_ Source) *Receiver {
	return &Receiver{}
}

// Register is a no-op on non-Linux platforms.
func (r *Receiver) Register(_ *control.Bus) error {
	return nil
}

// Unregister is a no-op on non-Linux platforms.
func (r *Receiver) Unregister() {}

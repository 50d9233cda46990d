package media

import (
	"context"
	"fmt"
	"os"

	"github.com/lamare/creator-studio/internal/core/ports"
)

const defaultDevice = "/dev/video0"

// DeviceCapture acquires the local camera device for the identity check.
// Opening the device is the permission probe: a missing or unreadable
// device counts as denial.
type DeviceCapture struct {
	path string
}

// NewDeviceCapture creates a capture backed by the given device path, or
// the default camera when path is empty.
func NewDeviceCapture(path string) *DeviceCapture {
	if path == "" {
		path = defaultDevice
	}
	return &DeviceCapture{path: path}
}

// Acquire opens the camera device and returns the live stream. The caller
// owns the stream and must close it.
func (c *DeviceCapture) Acquire(ctx context.Context) (ports.MediaStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("open capture device %s: %w", c.path, err)
	}
	return f, nil
}

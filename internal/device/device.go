package device

import (
	"context"
	"errors"
	"os/exec"
)

// Capabilities follow the same two-step shape: ask the user for permission,
// then perform a single capture. Fakes replace them in tests so no real
// OS prompt or hardware is involved.

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Photo is a capture result. Base64 holds the jpeg payload when the
// reduced-quality encode succeeded; URI always points at the raw file.
type Photo struct {
	Base64 string
	URI    string
}

// ErrCancelled reports that the user backed out of a capture. Callers
// treat it as a non-event rather than a failure.
var ErrCancelled = errors.New("capture cancelled")

type Locator interface {
	RequestPermission(ctx context.Context) (bool, error)
	Capture(ctx context.Context) (Coordinates, error)
}

type Camera interface {
	RequestPermission(ctx context.Context) (bool, error)
	Capture(ctx context.Context) (Photo, error)
}

// Confirmer asks the user a yes/no question. The terminal Prompter is the
// real implementation.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

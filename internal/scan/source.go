package scan

import "context"

// Permission is the access state of a scan source.
type Permission int

const (
	// PermissionUndetermined means access has not been requested yet.
	PermissionUndetermined Permission = iota
	// PermissionGranted means the source can deliver scans.
	PermissionGranted
	// PermissionDenied means the source cannot be read.
	PermissionDenied
)

// String returns the permission name.
func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "undetermined"
	}
}

// Source delivers decoded QR payloads, the terminal stand-in for a camera.
type Source interface {
	// Request asks for access and starts delivering scans once granted.
	// It may be called again after a denial.
	Request(ctx context.Context) (Permission, error)
	// Frames yields decoded payloads. A nil channel means the source never emits.
	Frames() <-chan string
	// Errors yields non-fatal read failures.
	Errors() <-chan error
	// Close stops the source.
	Close() error
}

// KeyboardOnly is a source for setups without a capture device; scans come
// from a keyboard-wedge scanner typing into the UI instead.
type KeyboardOnly struct{}

// Request always grants access.
func (KeyboardOnly) Request(context.Context) (Permission, error) { return PermissionGranted, nil }

// Frames returns nil; keyboard scans are read by the UI.
func (KeyboardOnly) Frames() <-chan string { return nil }

// Errors returns nil.
func (KeyboardOnly) Errors() <-chan error { return nil }

// Close does nothing.
func (KeyboardOnly) Close() error { return nil }

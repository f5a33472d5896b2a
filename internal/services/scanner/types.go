package scanner

import (
	"log/slog"
	"time"

	"pianostyle/internal/models"
)

// State is the engine lifecycle state.
type State string

const (
	StateIdle             State = "idle"
	StateRequesting       State = "requesting"
	StateStreaming        State = "streaming"
	StateDetecting        State = "detecting"
	StateStopped          State = "stopped"
	StatePermissionDenied State = "permission_denied"
	StateUnsupported      State = "unsupported"
)

// PermissionState is the camera permission surface exposed to the host.
type PermissionState string

const (
	PermissionUnknown PermissionState = "unknown"
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
)

// DefaultPollInterval is the detection poll cadence.
const DefaultPollInterval = 500 * time.Millisecond

// Callbacks receive engine events. All are optional. OnScan fires exactly
// once per successful decode; the engine never stops itself on success.
type Callbacks struct {
	OnScan             func(models.ScanRecord)
	OnError            func(error)
	OnPermissionDenied func(message string)
}

// Options configure an engine. At least one of Native or Fallback must
// be set; Native is preferred when both are.
type Options struct {
	PollInterval time.Duration
	Constraints  Constraints
	Native       StreamDetector
	Fallback     FrameDetector
	Logger       *slog.Logger
}

// User-facing failure messages, one per error class.
const (
	msgPermissionDenied = "Camera access was denied. Grant camera permission in your browser settings and try again."
	msgDeviceNotFound   = "No camera was found on this device."
	msgStreamFailure    = "Unable to start the camera. Close other apps using the camera and retry."
	msgUnsupported      = "This device does not support camera scanning. Enter the code manually instead."
)

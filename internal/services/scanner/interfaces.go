package scanner

import "context"

// Facing selects which way the requested camera points.
type Facing string

const (
	FacingUser        Facing = "user"
	FacingEnvironment Facing = "environment"
)

// DeviceInfo describes one enumerated video input device.
type DeviceInfo struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Facing Facing `json:"facing,omitempty"`
}

// Constraints are the stream-acquisition preferences passed to Open.
type Constraints struct {
	DeviceID string
	Facing   Facing
	Width    int
	Height   int
}

// TrackCapabilities is the capability probe recorded when a stream
// attaches.
type TrackCapabilities struct {
	Torch bool
}

// Frame is one grabbed video frame for the manual decode path.
type Frame struct {
	Pixels []byte
	Width  int
	Height int
}

// MediaDevices is the platform camera surface. Implementations wrap the
// host environment; errors from Open wrap the scanner error sentinels so
// the engine can map them to states.
type MediaDevices interface {
	// Supported reports whether the platform offers a camera API at all.
	Supported() bool

	// Enumerate lists available video input devices.
	Enumerate(ctx context.Context) ([]DeviceInfo, error)

	// Open acquires a stream matching the constraints. It blocks until
	// the user answers the permission prompt or ctx is done.
	Open(ctx context.Context, c Constraints) (MediaStream, error)
}

// MediaStream is an acquired camera stream. It is exclusively owned by
// the engine that opened it; whoever opens it must release every track.
type MediaStream interface {
	Tracks() []Track
}

// Track is one video track of a stream.
type Track interface {
	Stop()
	Capabilities() TrackCapabilities
	SetTorch(on bool) error
	Grab(ctx context.Context) (*Frame, error)
}

// Detection is one decoded barcode.
type Detection struct {
	Text   string
	Format string
}

// StreamDetector is the native fast-path decoder operating directly on
// the stream.
type StreamDetector interface {
	Detect(ctx context.Context, s MediaStream) (Detection, bool, error)
}

// FrameDetector is the manual fallback decoder fed grabbed frames.
type FrameDetector interface {
	Decode(ctx context.Context, f *Frame) (Detection, bool, error)
}

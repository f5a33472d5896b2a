// Package scanner turns a camera feed into a stream of decoded raw
// strings. The engine owns its stream exclusively and guarantees track
// release on every exit path: explicit stop, failed start, device switch
// and permission revocation all tear down through the same path.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "pianostyle/internal/errors"
	"pianostyle/internal/models"
)

// Engine is the camera-scanning state machine:
//
//	Idle -> Requesting -> Streaming -> Detecting -> Stopped
//
// with PermissionDenied and Unsupported as failure states. Detection
// polls are strictly sequential; a new poll is scheduled only after the
// previous one completes, so decodes are emitted in capture order.
type Engine struct {
	devices MediaDevices
	opts    Options
	cb      Callbacks
	logger  *slog.Logger

	mu             sync.Mutex
	state          State
	permission     PermissionState
	stream         MediaStream
	constraints    Constraints
	videoInputs    []DeviceInfo
	torchSupported bool
	torchOn        bool
	timer          *time.Timer
	ctx            context.Context

	// gen is bumped on every teardown; polls and detections carrying a
	// stale generation are discarded instead of dispatched.
	gen int
}

// NewEngine creates a scanner engine.
func NewEngine(devices MediaDevices, opts Options, cb Callbacks) *Engine {
	if devices == nil {
		panic("media devices are required")
	}
	if opts.Native == nil && opts.Fallback == nil {
		panic("a detector is required")
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Engine{
		devices:     devices,
		opts:        opts,
		cb:          cb,
		logger:      opts.Logger,
		state:       StateIdle,
		permission:  PermissionUnknown,
		constraints: opts.Constraints,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// PermissionState returns the camera permission surface.
func (e *Engine) PermissionState() PermissionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.permission
}

// Devices returns the video inputs enumerated during the last start.
func (e *Engine) Devices() []DeviceInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]DeviceInfo(nil), e.videoInputs...)
}

// TorchSupported reports whether the active track exposes a torch.
func (e *Engine) TorchSupported() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.torchSupported
}

// Start acquires the camera and begins the detection loop. Starting an
// already-running engine is a no-op. Start doubles as the explicit
// "request permission" action of the permission surface.
func (e *Engine) Start(ctx context.Context) error {
	return e.start(ctx, e.constraints)
}

// SwitchDevice tears down the active stream and restarts it against the
// given device id.
func (e *Engine) SwitchDevice(ctx context.Context, deviceID string) error {
	e.mu.Lock()
	c := e.constraints
	c.DeviceID = deviceID
	if e.state == StateStreaming || e.state == StateDetecting || e.state == StateRequesting {
		e.teardownLocked(StateIdle)
	}
	e.mu.Unlock()
	return e.start(ctx, c)
}

// SetTorch toggles the flashlight. A no-op, not an error, when the
// active track does not support it.
func (e *Engine) SetTorch(on bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.torchSupported || e.stream == nil {
		return nil
	}
	tracks := e.stream.Tracks()
	if len(tracks) == 0 {
		return nil
	}
	if err := tracks[0].SetTorch(on); err != nil {
		return fmt.Errorf("set torch: %w", err)
	}
	e.torchOn = on
	return nil
}

// Stop releases the stream and cancels any pending poll. Idempotent:
// stopping a stopped engine is a no-op. An Unsupported engine stays
// Unsupported for the rest of the session.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateStopped || e.state == StateUnsupported {
		return
	}
	e.teardownLocked(StateStopped)
}

func (e *Engine) start(ctx context.Context, c Constraints) error {
	e.mu.Lock()
	switch e.state {
	case StateRequesting, StateStreaming, StateDetecting:
		e.mu.Unlock()
		return nil
	case StateUnsupported:
		e.mu.Unlock()
		return domainErrors.ErrCameraUnsupported
	}

	if !e.devices.Supported() {
		e.state = StateUnsupported
		e.mu.Unlock()
		e.logger.Warn("camera API unavailable")
		e.emitError(domainErrors.ErrCameraUnsupported, msgUnsupported)
		return domainErrors.ErrCameraUnsupported
	}

	e.state = StateRequesting
	e.constraints = c
	e.ctx = ctx
	gen := e.gen
	e.mu.Unlock()

	if inputs, err := e.devices.Enumerate(ctx); err == nil {
		e.mu.Lock()
		e.videoInputs = inputs
		e.mu.Unlock()
	}

	stream, err := e.devices.Open(ctx, c)
	if err != nil {
		return e.failStart(gen, err)
	}

	e.mu.Lock()
	if e.gen != gen {
		// Stopped while the permission prompt was pending.
		e.mu.Unlock()
		releaseTracks(stream)
		return domainErrors.ErrScannerStopped
	}
	e.stream = stream
	e.state = StateStreaming
	e.permission = PermissionGranted
	if tracks := stream.Tracks(); len(tracks) > 0 {
		e.torchSupported = tracks[0].Capabilities().Torch
	}
	e.state = StateDetecting
	e.scheduleLocked(gen, 0)
	e.mu.Unlock()

	return nil
}

// failStart maps an acquisition error to a state and a distinct
// user-facing message. Permission denial is recoverable only through a
// fresh Start after access is granted out-of-band.
func (e *Engine) failStart(gen int, err error) error {
	e.mu.Lock()
	if e.gen != gen {
		e.mu.Unlock()
		return domainErrors.ErrScannerStopped
	}

	switch {
	case errors.Is(err, domainErrors.ErrPermissionDenied):
		e.state = StatePermissionDenied
		e.permission = PermissionDenied
		e.mu.Unlock()
		e.logger.Warn("camera permission denied")
		if e.cb.OnPermissionDenied != nil {
			e.cb.OnPermissionDenied(msgPermissionDenied)
		}
		e.emitError(err, "")
		return err

	case errors.Is(err, domainErrors.ErrDeviceNotFound):
		e.state = StateIdle
		e.mu.Unlock()
		e.emitError(err, msgDeviceNotFound)
		return err

	default:
		e.state = StateIdle
		e.mu.Unlock()
		wrapped := fmt.Errorf("%w: %v", domainErrors.ErrStreamFailure, err)
		e.emitError(wrapped, msgStreamFailure)
		return wrapped
	}
}

func (e *Engine) emitError(err error, message string) {
	if message != "" {
		e.logger.Error("scanner error", "error", err, "message", message)
	}
	if e.cb.OnError != nil {
		e.cb.OnError(err)
	}
}

// scheduleLocked arms the poll timer. Caller holds e.mu.
func (e *Engine) scheduleLocked(gen int, delay time.Duration) {
	if delay <= 0 {
		delay = e.opts.PollInterval
	}
	e.timer = time.AfterFunc(delay, func() { e.poll(gen) })
}

// poll runs one detection attempt and reschedules itself. A panic inside
// a detector is logged and the loop continues; the loop terminates only
// when the generation has moved on.
func (e *Engine) poll(gen int) {
	e.mu.Lock()
	if e.gen != gen || e.state != StateDetecting {
		e.mu.Unlock()
		return
	}
	stream := e.stream
	ctx := e.ctx
	e.mu.Unlock()

	det, ok := e.detect(ctx, stream)

	e.mu.Lock()
	if e.gen != gen || e.state != StateDetecting {
		// Stopped mid-poll: discard the detection instead of dispatching.
		e.mu.Unlock()
		return
	}
	onScan := e.cb.OnScan
	e.scheduleLocked(gen, e.opts.PollInterval)
	e.mu.Unlock()

	if ok && onScan != nil {
		onScan(models.ScanRecord{
			ID:        uuid.NewString(),
			RawData:   det.Text,
			Format:    det.Format,
			Timestamp: models.NewScanTimestamp(),
		})
	}
}

func (e *Engine) detect(ctx context.Context, stream MediaStream) (det Detection, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("detector panicked", "panic", r)
			det, ok = Detection{}, false
		}
	}()

	if e.opts.Native != nil {
		d, found, err := e.opts.Native.Detect(ctx, stream)
		if err != nil {
			e.logger.Debug("native detection failed", "error", err)
			return Detection{}, false
		}
		return d, found
	}

	tracks := stream.Tracks()
	if len(tracks) == 0 {
		return Detection{}, false
	}
	frame, err := tracks[0].Grab(ctx)
	if err != nil {
		e.logger.Debug("frame grab failed", "error", err)
		return Detection{}, false
	}
	d, found, err := e.opts.Fallback.Decode(ctx, frame)
	if err != nil {
		e.logger.Debug("frame decode failed", "error", err)
		return Detection{}, false
	}
	return d, found
}

// teardownLocked cancels the pending poll, releases every track and
// moves to next. Caller holds e.mu.
func (e *Engine) teardownLocked(next State) {
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if e.stream != nil {
		releaseTracks(e.stream)
		e.stream = nil
	}
	e.torchSupported = false
	e.torchOn = false
	e.state = next
}

func releaseTracks(s MediaStream) {
	for _, t := range s.Tracks() {
		t.Stop()
	}
}

// Package scanrouter bridges scanner output into typed application
// events: each scan record is decoded once and dispatched to exactly one
// primary handler, with a short cool-down between accepted scans and a
// bounded most-recent-first history.
package scanrouter

import (
	"log/slog"
	"sync"
	"time"

	"pianostyle/internal/models"
	"pianostyle/internal/services/codec"
)

// Router rate-limits and dispatches scan records.
type Router struct {
	codec    codec.Service
	handlers Handlers
	opts     Options
	metrics  MetricsCollector
	logger   *slog.Logger

	mu         sync.Mutex
	processing bool
	history    []models.ScanRecord
}

// NewRouter creates a scan result router.
func NewRouter(codecSvc codec.Service, handlers Handlers, opts Options, metrics MetricsCollector, logger *slog.Logger) *Router {
	if codecSvc == nil {
		panic("codec service is required")
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultCooldown
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		codec:    codecSvc,
		handlers: handlers,
		opts:     opts,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleScan processes one scanner emission. Records arriving while a
// previous one is still inside its cool-down are ignored, which prevents
// rapid-fire duplicate dispatch of the same code. The processing flag is
// cleared after the cool-down on every path, including handler panics,
// so one bad payload can never wedge the router.
func (r *Router) HandleScan(rec models.ScanRecord) {
	r.mu.Lock()
	if r.processing {
		r.mu.Unlock()
		r.metrics.RecordDropped("cooldown")
		return
	}
	r.processing = true
	r.appendHistoryLocked(rec)
	r.mu.Unlock()

	defer time.AfterFunc(r.opts.Cooldown, r.clearProcessing)
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("scan handler panicked", "panic", p)
		}
	}()

	result := r.codec.DecodeScannedText(rec.RawData)
	r.metrics.RecordScan(result.Kind.String())
	r.dispatch(result)
}

func (r *Router) clearProcessing() {
	r.mu.Lock()
	r.processing = false
	r.mu.Unlock()
}

// History returns the bounded scan history, most recent first.
func (r *Router) History() []models.ScanRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ScanRecord(nil), r.history...)
}

func (r *Router) appendHistoryLocked(rec models.ScanRecord) {
	r.history = append([]models.ScanRecord{rec}, r.history...)
	if len(r.history) > r.opts.HistorySize {
		r.history = r.history[:r.opts.HistorySize]
	}
}

// dispatch routes a decode result to its typed handler. The switch is
// exhaustive over the result kinds; adding a kind without a branch here
// falls through to the error handler instead of being dropped.
func (r *Router) dispatch(result codec.Result) {
	switch result.Kind {
	case models.KindVenue:
		if r.handlers.OnVenue != nil {
			r.handlers.OnVenue(result.Slug, result.Venue)
		}
		r.dispatchEmbeddedPayment(result)

	case models.KindUser:
		if r.handlers.OnUserProfile != nil {
			r.handlers.OnUserProfile(result.Wallet, result.User)
		}
		r.dispatchEmbeddedPayment(result)

	case models.KindPaymentURI:
		if r.handlers.OnPayment != nil && result.Payment != nil {
			r.handlers.OnPayment(*result.Payment)
		}

	case models.KindAddress:
		if r.handlers.OnWalletAddress != nil {
			r.handlers.OnWalletAddress(result.Address)
		}

	case models.KindLink:
		if r.handlers.OnLink != nil {
			r.handlers.OnLink(result.Link)
		}

	default:
		if r.handlers.OnError != nil {
			r.handlers.OnError(result.Raw)
		}
	}
}

// dispatchEmbeddedPayment surfaces the secondary payment event carried
// inside an identity payload.
func (r *Router) dispatchEmbeddedPayment(result codec.Result) {
	if result.Payment == nil || r.handlers.OnPayment == nil {
		return
	}
	r.handlers.OnPayment(*result.Payment)
}

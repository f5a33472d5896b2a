package scanrouter

import (
	"time"

	"pianostyle/internal/models"
)

const (
	// DefaultCooldown is how long the router ignores further scans after
	// dispatching one. A debounce, not a lock.
	DefaultCooldown = time.Second

	// DefaultHistorySize bounds the in-memory scan history.
	DefaultHistorySize = 5
)

// Handlers are the typed dispatch targets. Exactly one primary handler
// fires per accepted scan; OnPayment may additionally fire for a payment
// embedded in an identity payload.
type Handlers struct {
	// OnPayment receives payment URIs and embedded payment requests.
	OnPayment func(models.Payment)

	// OnWalletAddress receives bare or embedded address scans.
	OnWalletAddress func(address string)

	// OnVenue receives venue payloads; payload is nil for deep links
	// that carried only a slug.
	OnVenue func(slug string, payload *models.VenuePayload)

	// OnUserProfile receives user payloads; payload is nil for deep
	// links that carried only an address.
	OnUserProfile func(address string, payload *models.UserPayload)

	// OnLink receives generic web fallback links.
	OnLink func(url string)

	// OnError receives the raw text of unrecognized scans. Callers must
	// surface it, never drop it silently.
	OnError func(raw string)
}

// Options configure a router.
type Options struct {
	Cooldown    time.Duration
	HistorySize int
}

// MetricsCollector records routing outcomes.
type MetricsCollector interface {
	RecordScan(kind string)
	RecordDropped(reason string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordScan(string)    {}
func (NoopMetricsCollector) RecordDropped(string) {}

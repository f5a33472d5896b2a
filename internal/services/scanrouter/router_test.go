package scanrouter

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pianostyle/internal/models"
	"pianostyle/internal/services/codec"
)

const testAddr = "0xAbC000000000000000000000000000000000dEaD"

type capture struct {
	mu        sync.Mutex
	payments  []models.Payment
	addresses []string
	venues    []string
	users     []string
	links     []string
	errors    []string
}

func (c *capture) handlers() Handlers {
	return Handlers{
		OnPayment: func(p models.Payment) {
			c.mu.Lock()
			c.payments = append(c.payments, p)
			c.mu.Unlock()
		},
		OnWalletAddress: func(addr string) {
			c.mu.Lock()
			c.addresses = append(c.addresses, addr)
			c.mu.Unlock()
		},
		OnVenue: func(slug string, _ *models.VenuePayload) {
			c.mu.Lock()
			c.venues = append(c.venues, slug)
			c.mu.Unlock()
		},
		OnUserProfile: func(addr string, _ *models.UserPayload) {
			c.mu.Lock()
			c.users = append(c.users, addr)
			c.mu.Unlock()
		},
		OnLink: func(url string) {
			c.mu.Lock()
			c.links = append(c.links, url)
			c.mu.Unlock()
		},
		OnError: func(raw string) {
			c.mu.Lock()
			c.errors = append(c.errors, raw)
			c.mu.Unlock()
		},
	}
}

func record(raw string) models.ScanRecord {
	return models.ScanRecord{
		ID:        "test",
		RawData:   raw,
		Timestamp: models.NewScanTimestamp(),
		Format:    "qr_code",
	}
}

func newTestRouter(handlers Handlers, opts Options) *Router {
	codecSvc := codec.NewService("https://pianostyle.app", nil)
	return NewRouter(codecSvc, handlers, opts, nil, nil)
}

func TestRouterDispatch(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		verify func(*testing.T, *capture)
	}{
		{
			name: "payment uri",
			raw:  fmt.Sprintf("celo:pay?address=%s&amount=25", testAddr),
			verify: func(t *testing.T, c *capture) {
				require.Len(t, c.payments, 1)
				assert.Equal(t, testAddr, c.payments[0].Address)
				assert.Equal(t, "25000000000000000000", c.payments[0].Amount)
			},
		},
		{
			name: "bare address",
			raw:  testAddr,
			verify: func(t *testing.T, c *capture) {
				require.Len(t, c.addresses, 1)
				assert.Equal(t, testAddr, c.addresses[0])
			},
		},
		{
			name: "venue deep link",
			raw:  "pianostyle://venue/blue-note",
			verify: func(t *testing.T, c *capture) {
				assert.Equal(t, []string{"blue-note"}, c.venues)
				assert.Empty(t, c.payments)
			},
		},
		{
			name: "user deep link",
			raw:  "pianostyle://user/" + testAddr,
			verify: func(t *testing.T, c *capture) {
				assert.Equal(t, []string{testAddr}, c.users)
			},
		},
		{
			name: "unrecognized surfaces the raw text",
			raw:  "complete garbage",
			verify: func(t *testing.T, c *capture) {
				assert.Equal(t, []string{"complete garbage"}, c.errors)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &capture{}
			r := newTestRouter(c.handlers(), Options{Cooldown: time.Millisecond})
			r.HandleScan(record(tt.raw))

			c.mu.Lock()
			defer c.mu.Unlock()
			tt.verify(t, c)
		})
	}
}

func TestRouterDualDispatch(t *testing.T) {
	codecSvc := codec.NewService("https://pianostyle.app", nil)
	payload := codecSvc.BuildVenuePayload(
		&models.Venue{Slug: "blue-note", Name: "Blue Note"},
		&models.Payment{Address: testAddr, Amount: "1000000000000000000"},
	)
	text, err := codecSvc.EncodeVenuePayload(payload)
	require.NoError(t, err)

	c := &capture{}
	r := NewRouter(codecSvc, c.handlers(), Options{Cooldown: time.Millisecond}, nil, nil)
	r.HandleScan(record(text))

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, []string{"blue-note"}, c.venues)
	require.Len(t, c.payments, 1)
	assert.Equal(t, testAddr, c.payments[0].Address)
}

func TestRouterCooldown(t *testing.T) {
	c := &capture{}
	r := newTestRouter(c.handlers(), Options{Cooldown: 50 * time.Millisecond})

	r.HandleScan(record(testAddr))
	r.HandleScan(record(testAddr)) // inside cool-down, dropped

	c.mu.Lock()
	assert.Len(t, c.addresses, 1)
	c.mu.Unlock()

	// After the cool-down the router accepts scans again.
	assert.Eventually(t, func() bool {
		r.HandleScan(record(testAddr))
		c.mu.Lock()
		defer c.mu.Unlock()
		return len(c.addresses) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestRouterClearsFlagWhenHandlerPanics(t *testing.T) {
	var calls int
	var mu sync.Mutex
	handlers := Handlers{
		OnWalletAddress: func(string) {
			mu.Lock()
			calls++
			mu.Unlock()
			panic("bad handler")
		},
	}
	r := newTestRouter(handlers, Options{Cooldown: 10 * time.Millisecond})

	assert.NotPanics(t, func() { r.HandleScan(record(testAddr)) })

	assert.Eventually(t, func() bool {
		r.HandleScan(record(testAddr))
		mu.Lock()
		defer mu.Unlock()
		return calls >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestRouterHistory(t *testing.T) {
	c := &capture{}
	r := newTestRouter(c.handlers(), Options{Cooldown: time.Millisecond, HistorySize: 2})

	for i := 0; i < 3; i++ {
		raw := fmt.Sprintf("scan-%d", i)
		require.Eventually(t, func() bool {
			before := len(r.History())
			r.HandleScan(record(raw))
			return len(r.History()) > before || historyHas(r, raw)
		}, time.Second, 5*time.Millisecond)
	}

	history := r.History()
	require.Len(t, history, 2)
	assert.Equal(t, "scan-2", history[0].RawData)
	assert.Equal(t, "scan-1", history[1].RawData)
}

func historyHas(r *Router, raw string) bool {
	for _, rec := range r.History() {
		if rec.RawData == raw {
			return true
		}
	}
	return false
}

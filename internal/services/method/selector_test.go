package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pianostyle/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		snap     models.CapabilitySnapshot
		wallet   models.WalletContext
		expected models.SessionClass
	}{
		{
			name:     "metamask desktop",
			snap:     models.CapabilitySnapshot{HasMetaMask: true},
			expected: models.SessionWeb3,
		},
		{
			name:     "valora mobile",
			snap:     models.CapabilitySnapshot{HasValora: true, IsMobile: true},
			expected: models.SessionWeb3,
		},
		{
			name:     "coinbase wallet",
			snap:     models.CapabilitySnapshot{HasCoinbaseWallet: true},
			expected: models.SessionWeb3,
		},
		{
			name:     "connected wallet without provider flags",
			snap:     models.CapabilitySnapshot{},
			wallet:   models.WalletContext{Address: "0xabc", ChainID: 44787, Connected: true},
			expected: models.SessionWeb3,
		},
		{
			name:     "disconnected wallet context",
			snap:     models.CapabilitySnapshot{},
			wallet:   models.WalletContext{Address: "0xabc", ChainID: 44787},
			expected: models.SessionQR,
		},
		{
			name:     "no provider",
			snap:     models.CapabilitySnapshot{IsMobile: true, SupportsCamera: true},
			expected: models.SessionQR,
		},
		{
			name:     "empty snapshot",
			snap:     models.CapabilitySnapshot{},
			expected: models.SessionQR,
		},
	}

	sel := NewSelector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sel.Classify(tt.snap, tt.wallet))
		})
	}
}

func TestSuggestWeb3Desktop(t *testing.T) {
	sel := NewSelector()
	got := sel.Suggest(models.CapabilitySnapshot{HasMetaMask: true}, models.WalletContext{})

	require.Len(t, got, 2)
	assert.Equal(t, models.MethodWeb3, got[0].Method)
	assert.Equal(t, 1, got[0].Priority)
	assert.Equal(t, models.MethodQRDisplay, got[1].Method)
	assert.Equal(t, 3, got[1].Priority)
}

func TestSuggestWeb3Mobile(t *testing.T) {
	sel := NewSelector()
	got := sel.Suggest(models.CapabilitySnapshot{
		HasValora:      true,
		IsMobile:       true,
		SupportsCamera: true,
	}, models.WalletContext{})

	require.Len(t, got, 3)
	assert.Equal(t, models.MethodWeb3, got[0].Method)
	assert.Equal(t, 1, got[0].Priority)
	assert.Equal(t, models.MethodQRScan, got[1].Method)
	assert.Equal(t, 2, got[1].Priority)
	assert.Equal(t, models.MethodQRDisplay, got[2].Method)
	assert.Equal(t, 3, got[2].Priority)
}

func TestSuggestConnectedWallet(t *testing.T) {
	sel := NewSelector()

	// A live connection puts direct payment first even when no provider
	// was detected in the capability probe.
	got := sel.Suggest(models.CapabilitySnapshot{}, models.WalletContext{Connected: true})

	require.Len(t, got, 2)
	assert.Equal(t, models.MethodWeb3, got[0].Method)
	assert.Equal(t, 1, got[0].Priority)
	assert.Equal(t, models.MethodQRDisplay, got[1].Method)
	assert.Equal(t, 3, got[1].Priority)
}

func TestSuggestQRMobile(t *testing.T) {
	sel := NewSelector()
	got := sel.Suggest(models.CapabilitySnapshot{
		IsMobile:       true,
		SupportsCamera: true,
	}, models.WalletContext{})

	require.Len(t, got, 2)
	assert.Equal(t, models.MethodQRScan, got[0].Method)
	assert.Equal(t, 1, got[0].Priority)
	assert.Equal(t, models.MethodQRDisplay, got[1].Method)
	assert.Equal(t, 2, got[1].Priority)
}

func TestSuggestQRDesktop(t *testing.T) {
	sel := NewSelector()

	// A camera alone is not enough; scanning is only offered on mobile.
	got := sel.Suggest(models.CapabilitySnapshot{SupportsCamera: true}, models.WalletContext{})
	require.Len(t, got, 1)
	assert.Equal(t, models.MethodQRDisplay, got[0].Method)
	assert.Equal(t, 2, got[0].Priority)
}

func TestSuggestAlwaysIncludesDisplay(t *testing.T) {
	sel := NewSelector()
	snaps := []models.CapabilitySnapshot{
		{},
		{HasMetaMask: true, IsMobile: true, SupportsCamera: true},
		{SupportsClipboard: true, SupportsShare: true},
	}
	for _, snap := range snaps {
		got := sel.Suggest(snap, models.WalletContext{})
		found := false
		for _, s := range got {
			if s.Method == models.MethodQRDisplay {
				found = true
			}
		}
		assert.True(t, found)
	}
}

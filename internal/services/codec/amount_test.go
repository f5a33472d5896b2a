package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainErrors "pianostyle/internal/errors"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"whole amount", "25", "25000000000000000000", false},
		{"fractional", "0.5", "500000000000000000", false},
		{"full precision", "1.000000000000000001", "1000000000000000001", false},
		{"excess precision floors", "1.23456789012345678901", "1234567890123456789", false},
		{"zero", "0", "0", false},
		{"whitespace trimmed", " 2 ", "2000000000000000000", false},
		{"empty", "", "", true},
		{"not a number", "abc", "", true},
		{"negative", "-1", "", true},
		{"fraction syntax", "1/3", "", true},
		{"exponent syntax", "2e5", "", true},
		{"bare dot", ".", "", true},
		{"trailing dot", "1.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBaseUnits(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainErrors.ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeScannedAmount(t *testing.T) {
	// Human decimals scale up; already-scaled base units pass through.
	assert.Equal(t, "25000000000000000000", normalizeScannedAmount("25"))
	assert.Equal(t, "500000000000000000", normalizeScannedAmount("0.5"))
	assert.Equal(t, "25000000000000000000", normalizeScannedAmount("25000000000000000000"))
	assert.Equal(t, "", normalizeScannedAmount(""))
	assert.Equal(t, "garbage", normalizeScannedAmount("garbage"))
}

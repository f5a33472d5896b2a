package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pianostyle/internal/models"
)

func validAddr() string {
	return "0x" + strings.Repeat("a", 40)
}

func TestIsValidVenuePayload(t *testing.T) {
	valid := &models.VenuePayload{
		Kind:    models.KindVenue,
		Version: models.PayloadVersion,
		Slug:    "blue-note",
		Name:    "Blue Note",
	}
	assert.True(t, IsValidVenuePayload(valid))

	assert.False(t, IsValidVenuePayload(nil))

	wrongKind := *valid
	wrongKind.Kind = models.KindUser
	assert.False(t, IsValidVenuePayload(&wrongKind))

	noName := *valid
	noName.Name = ""
	assert.False(t, IsValidVenuePayload(&noName))

	badPayment := *valid
	badPayment.Payment = &models.Payment{Address: "0x123"}
	assert.False(t, IsValidVenuePayload(&badPayment))
}

func TestIsValidPayment(t *testing.T) {
	assert.True(t, IsValidPayment(&models.Payment{Address: validAddr()}))
	assert.False(t, IsValidPayment(nil))
	assert.False(t, IsValidPayment(&models.Payment{}))
	assert.False(t, IsValidPayment(&models.Payment{Address: "0x123"}))
}

func TestIsValidUserPayload(t *testing.T) {
	valid := &models.UserPayload{
		Kind:          models.KindUser,
		Version:       models.PayloadVersion,
		WalletAddress: validAddr(),
	}
	assert.True(t, IsValidUserPayload(valid))

	assert.False(t, IsValidUserPayload(nil))

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"exactly 40 hex", "0x" + strings.Repeat("b", 40), true},
		{"39 hex", "0x" + strings.Repeat("b", 39), false},
		{"41 hex", "0x" + strings.Repeat("b", 41), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := *valid
			p.WalletAddress = tt.address
			assert.Equal(t, tt.want, IsValidUserPayload(&p))
		})
	}
}

package qrimage

import (
	"context"
	"time"

	"github.com/skip2/go-qrcode"
)

// Level is a QR error-correction level.
type Level string

const (
	LevelLow     Level = "L"
	LevelMedium  Level = "M"
	LevelQuart   Level = "Q"
	LevelHighest Level = "H"
)

const (
	// DefaultSize is the rendered pixel dimension when none is given.
	DefaultSize = 200

	// DefaultLevel suits on-screen codes. Payment and identity codes
	// default to LevelHighest so they survive print degradation.
	DefaultLevel = LevelMedium
)

// recoveryLevel maps a Level onto the encoder's recovery constants.
func (l Level) recoveryLevel() (qrcode.RecoveryLevel, bool) {
	switch l {
	case LevelLow:
		return qrcode.Low, true
	case LevelMedium:
		return qrcode.Medium, true
	case LevelQuart:
		return qrcode.High, true
	case LevelHighest:
		return qrcode.Highest, true
	}
	return qrcode.Medium, false
}

// Options control one render. Zero values fall back to defaults; colors
// are #RRGGBB hex strings.
type Options struct {
	Size       int    `json:"size"`
	Level      Level  `json:"level"`
	DarkColor  string `json:"darkColor"`
	LightColor string `json:"lightColor"`
}

// Image is a rendered QR code.
type Image struct {
	PNG     []byte `json:"-"`
	DataURL string `json:"dataUrl"`
	Size    int    `json:"size"`
	Level   Level  `json:"level"`
}

// CacheRepository stores rendered images keyed by a digest of every
// render input, so changed inputs can never be served a stale image.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

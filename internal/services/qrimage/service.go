package qrimage

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"time"

	"github.com/skip2/go-qrcode"

	domainErrors "pianostyle/internal/errors"
	"pianostyle/internal/models"
	"pianostyle/internal/services/codec"
)

const cacheTTL = time.Hour

// Service renders data strings into raster QR images.
type Service interface {
	// Generate renders data at the given options. Empty data is an
	// ErrEmptyInput; encoder failures surface as ErrEncodingFailure.
	Generate(ctx context.Context, data string, opts Options) (*Image, error)

	// GeneratePayment encodes a payment request as its canonical URI
	// and renders it at the highest correction level by default.
	GeneratePayment(ctx context.Context, p models.Payment, opts Options) (*Image, error)
}

type service struct {
	codec  codec.Service
	cache  CacheRepository
	logger *slog.Logger
}

// NewService creates a QR image service. cache may be nil to disable the
// render cache.
func NewService(codecSvc codec.Service, cache CacheRepository, logger *slog.Logger) Service {
	if codecSvc == nil {
		panic("codec service is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{codec: codecSvc, cache: cache, logger: logger}
}

func (s *service) Generate(ctx context.Context, data string, opts Options) (*Image, error) {
	if data == "" {
		return nil, domainErrors.ErrEmptyInput
	}
	opts = withDefaults(opts)

	level, ok := opts.Level.recoveryLevel()
	if !ok {
		return nil, fmt.Errorf("%w: unknown correction level %q", domainErrors.ErrEncodingFailure, opts.Level)
	}

	key := renderKey(data, opts)
	if png := s.cached(ctx, key); png != nil {
		return newImage(png, opts), nil
	}

	qr, err := qrcode.New(data, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrEncodingFailure, err)
	}
	if err := applyColors(qr, opts); err != nil {
		return nil, err
	}

	png, err := qr.PNG(opts.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrEncodingFailure, err)
	}

	s.store(ctx, key, png)
	return newImage(png, opts), nil
}

func (s *service) GeneratePayment(ctx context.Context, p models.Payment, opts Options) (*Image, error) {
	uri, err := s.codec.EncodePaymentURI(p)
	if err != nil {
		return nil, err
	}
	if opts.Level == "" {
		opts.Level = LevelHighest
	}
	return s.Generate(ctx, uri, opts)
}

func (s *service) cached(ctx context.Context, key string) []byte {
	if s.cache == nil {
		return nil
	}
	png, err := s.cache.Get(ctx, key)
	if err != nil || len(png) == 0 {
		return nil
	}
	return png
}

func (s *service) store(ctx context.Context, key string, png []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, png, cacheTTL); err != nil {
		s.logger.Warn("failed to cache rendered QR", "error", err)
	}
}

func withDefaults(opts Options) Options {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Level == "" {
		opts.Level = DefaultLevel
	}
	return opts
}

func applyColors(qr *qrcode.QRCode, opts Options) error {
	if opts.DarkColor != "" {
		c, err := parseHexColor(opts.DarkColor)
		if err != nil {
			return err
		}
		qr.ForegroundColor = c
	}
	if opts.LightColor != "" {
		c, err := parseHexColor(opts.LightColor)
		if err != nil {
			return err
		}
		qr.BackgroundColor = c
	}
	return nil
}

func parseHexColor(s string) (color.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("%w: invalid color %q", domainErrors.ErrEncodingFailure, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid color %q", domainErrors.ErrEncodingFailure, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// renderKey digests every render input, so a change to the data or any
// option always misses the cache.
func renderKey(data string, opts Options) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s|%s|%s", data, opts.Size, opts.Level, opts.DarkColor, opts.LightColor)
	return "qr:render:" + hex.EncodeToString(h.Sum(nil))
}

func newImage(png []byte, opts Options) *Image {
	return &Image{
		PNG:     png,
		DataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		Size:    opts.Size,
		Level:   opts.Level,
	}
}

package codec

import (
	"math/big"
	"regexp"
	"strings"

	domainErrors "pianostyle/internal/errors"
)

// weiScale is the fixed 18-decimal scale between human amounts and
// base-unit integer amounts.
var weiScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// decimalPattern is the only amount syntax accepted. big.Rat also parses
// fractions ("1/3") and exponents ("2e5"); those are rejected up front
// instead of being coerced.
var decimalPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ToBaseUnits converts a human decimal amount ("25", "0.5") to an
// 18-decimal base-unit integer string, floored. Callers must not pass
// already-scaled values.
func ToBaseUnits(amount string) (string, error) {
	amount = strings.TrimSpace(amount)
	if !decimalPattern.MatchString(amount) {
		return "", domainErrors.ErrInvalidAmount
	}

	r, ok := new(big.Rat).SetString(amount)
	if !ok {
		return "", domainErrors.ErrInvalidAmount
	}

	r.Mul(r, new(big.Rat).SetInt(weiScale))
	return new(big.Int).Quo(r.Num(), r.Denom()).String(), nil
}

// normalizeScannedAmount maps an amount taken from a scanned celo:pay URI
// to base units. Hand-authored codes carry human decimals ("25", "0.5");
// generated codes already carry base units. A value with a fractional
// part, or with 15 or fewer integer digits, is treated as human.
func normalizeScannedAmount(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, ".") && len(strings.TrimLeft(raw, "-")) > 15 {
		return raw
	}
	scaled, err := ToBaseUnits(raw)
	if err != nil {
		return raw
	}
	return scaled
}

// Package units converts between human-readable decimal amounts and raw
// integer chain units without float precision loss.
package units

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	// SOLDecimals is the lamport scale (1 SOL = 10^9 lamports).
	SOLDecimals = 9
	// EvmDecimals is the wei scale of EVM native assets.
	EvmDecimals = 18
)

// Format converts a raw integer amount to a decimal string by inserting a
// decimal point. Example: Format(24981836, 9) = "0.024981836".
func Format(value *big.Int, decimals int) string {
	neg := value.Sign() < 0
	s := new(big.Int).Abs(value).String()

	for len(s) <= decimals {
		s = "0" + s
	}

	pos := len(s) - decimals
	out := s[:pos]
	if decimals > 0 {
		out += "." + s[pos:]
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Parse converts a decimal string to a raw integer amount. Excess fractional
// digits beyond the token's decimals are truncated (floor), matching the
// lamport conversion behavior of the send pipeline.
func Parse(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("negative amount")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" {
		whole = "0"
	}

	// Pad or truncate fractional part to exactly decimals digits.
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	combined := whole + frac
	n, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return n, nil
}

// FormatUint is Format for amounts that fit in a uint64 (lamports).
func FormatUint(value uint64, decimals int) string {
	return Format(new(big.Int).SetUint64(value), decimals)
}

// ParseUint is Parse for amounts that must fit in a uint64 (lamports).
func ParseUint(s string, decimals int) (uint64, error) {
	n, err := Parse(s, decimals)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("amount %q overflows", s)
	}
	return n.Uint64(), nil
}

// LamportsToSOL converts lamports to a SOL string.
func LamportsToSOL(lamports uint64) string {
	return FormatUint(lamports, SOLDecimals)
}

// SOLToLamports converts a SOL string to lamports.
func SOLToLamports(sol string) (uint64, error) {
	return ParseUint(sol, SOLDecimals)
}

// FormatTokenAmount formats a raw integer amount string using the token's
// decimals. The input must be a base-10 integer string.
func FormatTokenAmount(raw string, decimals int) (string, error) {
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return "", fmt.Errorf("invalid raw amount %q", raw)
	}
	return Format(n, decimals), nil
}

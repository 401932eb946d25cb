package validation

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ValidateAddress validates a Core blockchain address format.
func ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("address cannot be empty")
	}

	normalized := strings.TrimPrefix(addr, "0x")
	normalized = strings.TrimPrefix(normalized, "0X")

	// 44 hex characters = 22 bytes
	if len(normalized) != 44 {
		return fmt.Errorf("invalid address length: expected 44 characters (without 0x), got %d", len(normalized))
	}

	if _, err := hex.DecodeString(normalized); err != nil {
		return fmt.Errorf("invalid hex address: %w", err)
	}

	return nil
}

// ValidateSymbol validates a token symbol: 1-11 upper-case alphanumeric
// characters, matching what the deployed token contract accepts.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if len(symbol) > 11 {
		return fmt.Errorf("symbol too long: got %d characters, maximum is 11", len(symbol))
	}
	for _, r := range symbol {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("symbol must be upper-case alphanumeric, got %q", symbol)
		}
	}
	return nil
}

// NormalizeAddress converts an address to lowercase without 0x prefix.
func NormalizeAddress(addr string) string {
	addr = strings.TrimPrefix(addr, "0x")
	addr = strings.TrimPrefix(addr, "0X")
	return strings.ToLower(addr)
}

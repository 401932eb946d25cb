package models

import "time"

// AccessField is the identity dimension an eligibility window is keyed on.
type AccessField string

const (
	// FieldIP rate-limits by the requester's source address.
	FieldIP AccessField = "ip"
	// FieldToAddress rate-limits by the destination wallet.
	FieldToAddress AccessField = "to_address"
)

type Repository interface {
	CreateToken(token *Token) error
	CreateTokenTransfer(transfer *TokenTransfer) error

	GetTokenByAddress(address string) (*Token, error)
	GetTokenBySymbol(symbol string) (*Token, error)
	GetAllTokens() ([]*Token, error)

	// GetNextAccess returns the moment the given identity may next claim the
	// given token: most recent matching transfer + 24h, a timestamp in the
	// past when no transfer exists, and a timestamp 24h in the future when
	// the lookup itself fails.
	GetNextAccess(field AccessField, value, tokenAddress string) time.Time
}

package models

// TokenType is the kind of asset a drip moves.
type TokenType string

const (
	// TokenCBC20 is a CBC20 token contract drip.
	TokenCBC20 TokenType = "CBC20"
	// TokenNative is a native XCB drip.
	TokenNative TokenType = "NATIVE"
)

// ZeroAddress is the token address recorded for native drips.
const ZeroAddress = "0x00000000000000000000000000000000000000000000"

// Token represents a token the faucet can dispense.
// A row is created once at successful deployment and never updated;
// re-deploying a token creates a new row.
type Token struct {
	// Address is the contract address of the token.
	Address string `json:"address" gorm:"column:address;primaryKey"`
	// TokenType is the token type (CBC20, NATIVE).
	TokenType TokenType `json:"token_type" gorm:"column:token_type"`
	// Name is the full name of the token.
	Name string `json:"name" gorm:"column:name"`
	// Symbol is the short symbol of the token. Unique across all deployed tokens.
	Symbol string `json:"symbol" gorm:"column:symbol;uniqueIndex"`
	// LogoURL points at the uploaded logo on the asset CDN.
	LogoURL string `json:"logo_url" gorm:"column:logo_url"`
	// NetworkID is the network the token was deployed on.
	NetworkID int `json:"network_id" gorm:"column:network_id"`
	// Decimals is the number of decimals the token uses.
	Decimals int `json:"decimals" gorm:"column:decimals"`
	// WithdrawLimit is the base per-drip amount, already scaled by decimals.
	// Stored as a decimal string since it does not fit in 64 bits.
	WithdrawLimit string `json:"withdraw_limit" gorm:"column:withdraw_limit"`
	// CreatedBy is the wallet that requested the deployment.
	CreatedBy string `json:"created_by" gorm:"column:created_by"`
}

// TokenTransfer is the audit record of a drip that reached the network.
// It is written once per broadcast and is the source of truth for the
// eligibility windows.
type TokenTransfer struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the token contract, or ZeroAddress for native drips.
	TokenAddress string    `json:"token_address" gorm:"column:token_address;index"`
	TokenType    TokenType `json:"token_type" gorm:"column:token_type"`
	TxHash       string    `json:"tx_hash" gorm:"column:tx_hash"`
	FromAddress  string    `json:"from_address" gorm:"column:from_address"`
	// ToAddress is the destination wallet, one of the rate-limited identity dimensions.
	ToAddress string `json:"to_address" gorm:"column:to_address;index"`
	// Amount is the dripped amount as a decimal string, scaled by decimals.
	Amount    string `json:"amount" gorm:"column:amount"`
	NetworkID int    `json:"network_id" gorm:"column:network_id"`
	// IP is the requester's source address, the other identity dimension.
	IP string `json:"ip" gorm:"column:ip;index"`
	// CreatedAt is the unix time the transfer was broadcast.
	CreatedAt int64 `json:"created_at" gorm:"column:created_at;autoCreateTime;index"`
}

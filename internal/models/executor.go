package models

import (
	"math/big"
	"time"
)

// TransferRequest asks the faucet for a drip of an existing token.
type TransferRequest struct {
	// TokenAddress is the token contract, or ZeroAddress for a native drip.
	TokenAddress string    `json:"token_address"`
	To           string    `json:"to"`
	TokenType    TokenType `json:"token_type"`
	// Magnification in an incoming payload is ignored; the executor replaces
	// it with the server-computed value before the request is queued.
	Magnification uint8 `json:"magnification,omitempty"`
	// IP is filled server-side from the connection, never from the body.
	IP string `json:"-"`
}

// DeployRequest asks the faucet to deploy a new CBC20 token.
type DeployRequest struct {
	Name            string
	Symbol          string
	TotalSupply     *big.Int
	Decimals        uint8
	DeployerAddress string
	FileName        string
	FileData        []byte
	IP              string
}

// AuthContext carries the caller's trust signals alongside a request.
// It is derived by the HTTP layer, never taken from the request body.
type AuthContext struct {
	// Verified is true when the caller holds an authenticated identity.
	Verified bool
	UserID   string
}

type ResponseStatus string

const (
	StatusSuccess ResponseStatus = "Success"
	StatusError   ResponseStatus = "Error"
)

// DripData is the success payload of an executed request.
type DripData struct {
	TxHash        string `json:"tx_hash"`
	Amount        string `json:"amount"`
	Magnification uint8  `json:"magnification"`
}

// ErrorData is the failure payload. NextAccess is set only for cooldown
// rejections; its presence tells the caller the failure is retryable.
type ErrorData struct {
	Message    string     `json:"message"`
	NextAccess *time.Time `json:"next_access,omitempty"`
}

// ExecutorResponse is the terminal outcome of a queued request, sent exactly
// once on the request's reply channel.
type ExecutorResponse struct {
	Status ResponseStatus `json:"status"`
	Data   *DripData      `json:"data,omitempty"`
	Error  *ErrorData     `json:"error,omitempty"`
}

// ExecutorI is what the HTTP layer sees of the executor: fire-and-correlate
// submission. Enqueue returns immediately; the result arrives on the channel.
type ExecutorI interface {
	SubmitTransfer(req *TransferRequest, auth AuthContext) <-chan ExecutorResponse
	SubmitDeploy(req *DeployRequest) <-chan ExecutorResponse
	Tokens() ([]*Token, error)
}

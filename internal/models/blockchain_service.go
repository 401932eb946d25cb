package models

import "math/big"

// BlockchainService submits faucet transactions with a single signing identity.
// Exactly one queue consumer may use a given instance; serial use is what keeps
// nonces ordered.
type BlockchainService interface {
	// Address returns the signing identity's own address.
	Address() string
	// NetworkID returns the connected network's id.
	NetworkID() *big.Int

	TokenBalance(tokenAddress, holder string) (*big.Int, error)
	NativeBalance(holder string) (*big.Int, error)

	// TransferToken submits a CBC20 transfer and returns the tx hash.
	TransferToken(tokenAddress, to string, amount *big.Int) (string, error)
	// SendNative submits a native value transfer and returns the tx hash.
	SendNative(to string, amount *big.Int) (string, error)
	// DeployToken deploys a CBC20 contract and returns its address.
	DeployToken(name, symbol string, totalSupply *big.Int, decimals uint8) (string, error)
}

package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/core-coin/go-core/v2/accounts/abi"
	"github.com/core-coin/go-core/v2/accounts/abi/bind"
	"github.com/core-coin/go-core/v2/common"
	"github.com/core-coin/go-core/v2/core/types"
	"github.com/core-coin/go-core/v2/crypto"
	"github.com/core-coin/go-core/v2/xcbclient"

	"github.com/core-coin/fontis/pkg/logger"
)

const (
	// RPCTimeout bounds every single RPC round trip.
	RPCTimeout = 10 * time.Second
	// NativeTransferEnergy is the energy limit of a plain value transfer.
	NativeTransferEnergy = uint64(21000)
)

// Gocore submits faucet transactions through a go-core RPC endpoint with a
// single signing key. It must only ever be driven by one queue consumer;
// serial use is what keeps the nonce sequence intact.
type Gocore struct {
	logger *logger.Logger
	apiURL string

	key       *crypto.PrivateKey
	address   common.Address
	client    *xcbclient.Client
	networkID *big.Int
	tokenABI  abi.ABI
}

// NewGocore creates a new Gocore instance bound to the given signing key.
func NewGocore(apiURL, privateKey string, logger *logger.Logger) (*Gocore, error) {
	key, err := crypto.UnmarshalPrivateKeyHex(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(CBC20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CBC20 ABI: %w", err)
	}

	return &Gocore{
		apiURL:   apiURL,
		logger:   logger,
		key:      key,
		address:  crypto.PubkeyToAddress(key.PublicKey()),
		tokenABI: parsedABI,
	}, nil
}

// Run connects to the RPC endpoint and caches the network id.
func (g *Gocore) Run() error {
	client, err := xcbclient.Dial(g.apiURL)
	if err != nil {
		return fmt.Errorf("failed to connect to the core RPC server: %w", err)
	}
	g.client = client

	ctx, cancel := context.WithTimeout(context.Background(), RPCTimeout)
	defer cancel()
	networkID, err := client.NetworkID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get network id: %w", err)
	}
	g.networkID = networkID

	return nil
}

func (g *Gocore) Close() error {
	if g.client != nil {
		g.client.Close()
	}
	return nil
}

func (g *Gocore) Address() string {
	return g.address.Hex()
}

func (g *Gocore) NetworkID() *big.Int {
	return new(big.Int).Set(g.networkID)
}

func (g *Gocore) TokenBalance(tokenAddress, holder string) (*big.Int, error) {
	token, err := common.HexToAddress(tokenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token address: %w", err)
	}
	holderAddr, err := common.HexToAddress(holder)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holder address: %w", err)
	}

	contract := bind.NewBoundContract(token, g.tokenABI, g.client, g.client, g.client)
	results := []interface{}{}
	if err := contract.Call(nil, &results, "balanceOf", holderAddr); err != nil {
		return nil, fmt.Errorf("failed to get token balance: %w", err)
	}
	balance, ok := results[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf result type %T", results[0])
	}
	return balance, nil
}

func (g *Gocore) NativeBalance(holder string) (*big.Int, error) {
	holderAddr, err := common.HexToAddress(holder)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holder address: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), RPCTimeout)
	defer cancel()
	balance, err := g.client.BalanceAt(ctx, holderAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get native balance: %w", err)
	}
	return balance, nil
}

// TransferToken submits a CBC20 transfer from the faucet key and returns the
// tx hash as soon as the transaction is accepted by the node.
func (g *Gocore) TransferToken(tokenAddress, to string, amount *big.Int) (string, error) {
	token, err := common.HexToAddress(tokenAddress)
	if err != nil {
		return "", fmt.Errorf("failed to parse token address: %w", err)
	}
	toAddr, err := common.HexToAddress(to)
	if err != nil {
		return "", fmt.Errorf("failed to parse to address: %w", err)
	}

	opts, err := g.transactOpts()
	if err != nil {
		return "", fmt.Errorf("failed to build signing options: %w", err)
	}

	contract := bind.NewBoundContract(token, g.tokenABI, g.client, g.client, g.client)
	tx, err := contract.Transact(opts, "transfer", toAddr, amount)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return tx.Hash().Hex(), nil
}

// SendNative submits a plain value transfer from the faucet key.
func (g *Gocore) SendNative(to string, amount *big.Int) (string, error) {
	toAddr, err := common.HexToAddress(to)
	if err != nil {
		return "", fmt.Errorf("failed to parse to address: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), RPCTimeout)
	defer cancel()

	nonce, err := g.client.PendingNonceAt(ctx, g.address)
	if err != nil {
		return "", fmt.Errorf("failed to get pending nonce: %w", err)
	}
	energyPrice, err := g.client.SuggestEnergyPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get energy price: %w", err)
	}

	tx := types.NewTransaction(nonce, toAddr, amount, NativeTransferEnergy, energyPrice, nil)
	signed, err := types.SignTx(tx, types.NewNucleusSigner(g.networkID), g.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := g.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return signed.Hash().Hex(), nil
}

// DeployToken deploys the CBC20 contract and returns its address. The
// constructor mints the full scaled supply to the deploy key's address.
func (g *Gocore) DeployToken(name, symbol string, totalSupply *big.Int, decimals uint8) (string, error) {
	opts, err := g.transactOpts()
	if err != nil {
		return "", fmt.Errorf("failed to build signing options: %w", err)
	}

	address, tx, _, err := bind.DeployContract(
		opts,
		g.tokenABI,
		common.FromHex(CBC20Bin),
		g.client,
		name, symbol, totalSupply, decimals,
	)
	if err != nil {
		return "", fmt.Errorf("failed to deploy contract: %w", err)
	}
	g.logger.Info("Deployed token contract ", "address ", address.Hex(), " tx ", tx.Hash().Hex())

	return address.Hex(), nil
}

// transactOpts builds fresh signing options. Energy price and nonce are left
// for the binder to resolve against the pending state; the network id comes
// from the connection, so Run must have succeeded first.
func (g *Gocore) transactOpts() (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithNetworkID(g.key, g.networkID)
}

package blockchain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/core-coin/fontis/pkg/logger"
)

// A well-formed ed448 private key (57 bytes hex).
const testKeyHex = "69bb68c3a00a0cd9cbf2cab316476228c758329bbfe0b1759e8634694a9497afea05bcbf24e2aa0627eac4240484bb71de646a9296872a3c0e"

func TestNewGocoreParsesKey(t *testing.T) {
	g, err := NewGocore("http://localhost:8545", testKeyHex, logger.NewNop())
	require.NoError(t, err)
	require.NotEmpty(t, g.Address())

	_, err = NewGocore("http://localhost:8545", "not-a-key", logger.NewNop())
	require.Error(t, err)
}

func TestNewGocoreAcceptsPrefixedKey(t *testing.T) {
	plain, err := NewGocore("http://localhost:8545", testKeyHex, logger.NewNop())
	require.NoError(t, err)

	prefixed, err := NewGocore("http://localhost:8545", "0x"+testKeyHex, logger.NewNop())
	require.NoError(t, err)
	require.Equal(t, plain.Address(), prefixed.Address())
}

func TestTransactOptsRequireNetworkID(t *testing.T) {
	g, err := NewGocore("http://localhost:8545", testKeyHex, logger.NewNop())
	require.NoError(t, err)

	// Before Run there is no cached network id and signing options cannot
	// be built.
	_, err = g.transactOpts()
	require.Error(t, err)

	g.networkID = big.NewInt(3)
	opts, err := g.transactOpts()
	require.NoError(t, err)
	require.Equal(t, g.address, opts.From)
	require.NotNil(t, opts.Signer)
}

func TestTransferTokenFailsCleanlyBeforeRun(t *testing.T) {
	g, err := NewGocore("http://localhost:8545", testKeyHex, logger.NewNop())
	require.NoError(t, err)

	// Without a connection the signing options fail first; nothing is
	// dialed and no panic reaches the caller.
	_, err = g.TransferToken(g.Address(), g.Address(), big.NewInt(1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "signing options")
}

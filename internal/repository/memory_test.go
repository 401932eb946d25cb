package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/core-coin/fontis/internal/models"
)

func TestMemoryTokenLookups(t *testing.T) {
	m := NewMemory()

	token := &models.Token{
		Address:       "0x01",
		Symbol:        "TST",
		WithdrawLimit: "1000",
	}
	require.NoError(t, m.CreateToken(token))

	byAddr, err := m.GetTokenByAddress("0x01")
	require.NoError(t, err)
	require.Equal(t, "TST", byAddr.Symbol)

	bySym, err := m.GetTokenBySymbol("TST")
	require.NoError(t, err)
	require.Equal(t, "0x01", bySym.Address)

	_, err = m.GetTokenByAddress("0x02")
	require.Error(t, err)

	all, err := m.GetAllTokens()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestMemoryRejectsDuplicateSymbol(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.CreateToken(&models.Token{Address: "0x01", Symbol: "TST"}))
	err := m.CreateToken(&models.Token{Address: "0x02", Symbol: "TST"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate symbol")
}

func TestMemoryNextAccessSemantics(t *testing.T) {
	m := NewMemory()
	token := "0x01"

	t.Run("no history means eligible now", func(t *testing.T) {
		next := m.GetNextAccess(models.FieldIP, "10.0.0.1", token)
		require.True(t, next.Before(time.Now()))
	})

	t.Run("recent claim pushes access out a full window", func(t *testing.T) {
		now := time.Now().Unix()
		require.NoError(t, m.CreateTokenTransfer(&models.TokenTransfer{
			TokenAddress: token,
			ToAddress:    "wallet-a",
			IP:           "10.0.0.1",
			CreatedAt:    now,
		}))

		next := m.GetNextAccess(models.FieldIP, "10.0.0.1", token)
		require.WithinDuration(t, time.Unix(now, 0).Add(models.EligibilityWindow), next, time.Second)

		next = m.GetNextAccess(models.FieldToAddress, "wallet-a", token)
		require.WithinDuration(t, time.Unix(now, 0).Add(models.EligibilityWindow), next, time.Second)
	})

	t.Run("windows are keyed per token", func(t *testing.T) {
		next := m.GetNextAccess(models.FieldIP, "10.0.0.1", "0x02")
		require.True(t, next.Before(time.Now()))
	})

	t.Run("lookup failure fails closed", func(t *testing.T) {
		m.FailNextAccess = true
		defer func() { m.FailNextAccess = false }()

		next := m.GetNextAccess(models.FieldIP, "10.255.0.1", token)
		require.True(t, next.After(time.Now()))
	})
}

func TestMemoryTransfersKeepCreationOrder(t *testing.T) {
	m := NewMemory()

	for i := 0; i < 3; i++ {
		require.NoError(t, m.CreateTokenTransfer(&models.TokenTransfer{
			TokenAddress: "0x01",
			ToAddress:    "wallet",
			TxHash:       string(rune('a' + i)),
		}))
	}

	transfers := m.Transfers()
	require.Len(t, transfers, 3)
	require.Equal(t, int64(1), transfers[0].ID)
	require.Equal(t, int64(3), transfers[2].ID)
	require.Equal(t, "a", transfers[0].TxHash)
	require.Equal(t, "c", transfers[2].TxHash)
}

package executor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/core-coin/fontis/internal/models"
	"github.com/core-coin/fontis/internal/repository"
)

func TestNextAccessNoHistoryIsEligible(t *testing.T) {
	gate := NewEligibilityGate(repository.NewMemory())

	next := gate.NextAccess("10.0.0.1", testAddr(0x02), testAddr(0x01))
	require.True(t, next.Before(time.Now()))
}

func TestNextAccessReturnsLaterDimension(t *testing.T) {
	repo := repository.NewMemory()
	gate := NewEligibilityGate(repo)

	token := testAddr(0x01)
	now := time.Now().Unix()

	// The wallet claimed an hour ago from another IP; this IP claimed the
	// same token two hours ago to another wallet.
	require.NoError(t, repo.CreateTokenTransfer(&models.TokenTransfer{
		TokenAddress: token,
		ToAddress:    testAddr(0x02),
		IP:           "10.0.0.9",
		CreatedAt:    now - 3600,
	}))
	require.NoError(t, repo.CreateTokenTransfer(&models.TokenTransfer{
		TokenAddress: token,
		ToAddress:    testAddr(0x09),
		IP:           "10.0.0.1",
		CreatedAt:    now - 7200,
	}))

	next := gate.NextAccess("10.0.0.1", testAddr(0x02), token)

	// The wallet's more recent claim wins.
	expected := time.Unix(now-3600, 0).Add(models.EligibilityWindow)
	require.WithinDuration(t, expected, next, time.Second)
}

func TestNextAccessExpiredWindowIsEligible(t *testing.T) {
	repo := repository.NewMemory()
	gate := NewEligibilityGate(repo)

	token := testAddr(0x01)
	old := time.Now().Add(-models.EligibilityWindow - time.Hour).Unix()

	require.NoError(t, repo.CreateTokenTransfer(&models.TokenTransfer{
		TokenAddress: token,
		ToAddress:    testAddr(0x02),
		IP:           "10.0.0.1",
		CreatedAt:    old,
	}))

	next := gate.NextAccess("10.0.0.1", testAddr(0x02), token)
	require.True(t, next.Before(time.Now()))
}

func TestNextAccessLookupFailureFailsClosed(t *testing.T) {
	repo := repository.NewMemory()
	repo.FailNextAccess = true
	gate := NewEligibilityGate(repo)

	next := gate.NextAccess("10.0.0.1", testAddr(0x02), testAddr(0x01))
	require.True(t, next.After(time.Now()))
}

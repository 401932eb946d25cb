package executor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/core-coin/fontis/internal/models"
	"github.com/core-coin/fontis/pkg/logger"
)

func TestMagnificationCombinesTrustSignals(t *testing.T) {
	require.Equal(t, uint8(1), Magnification(false, false))
	require.Equal(t, uint8(10), Magnification(true, false))
	require.Equal(t, uint8(10), Magnification(false, true))
	require.Equal(t, uint8(20), Magnification(true, true))
}

func TestMagnificationForRecognizedWallet(t *testing.T) {
	wallet := testAddr(0x02)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/"+wallet+"/count", r.URL.Path)
		w.Write([]byte(`{"status":"Ok","result":3}`))
	}))
	defer server.Close()

	policy := NewAwardPolicy(server.URL, logger.NewNop())

	require.Equal(t, uint8(10), policy.MagnificationFor(models.AuthContext{}, wallet))
	require.Equal(t, uint8(20), policy.MagnificationFor(models.AuthContext{Verified: true}, wallet))
}

func TestMagnificationForUnrecognizedWallet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"Ok","result":0}`))
	}))
	defer server.Close()

	policy := NewAwardPolicy(server.URL, logger.NewNop())

	require.Equal(t, uint8(1), policy.MagnificationFor(models.AuthContext{}, testAddr(0x02)))
	require.Equal(t, uint8(10), policy.MagnificationFor(models.AuthContext{Verified: true}, testAddr(0x02)))
}

func TestMagnificationForDegradesOnOrderbookFailure(t *testing.T) {
	t.Run("no orderbook configured", func(t *testing.T) {
		policy := NewAwardPolicy("", logger.NewNop())
		require.Equal(t, uint8(1), policy.MagnificationFor(models.AuthContext{}, testAddr(0x02)))
	})

	t.Run("orderbook returns server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		policy := NewAwardPolicy(server.URL, logger.NewNop())
		require.Equal(t, uint8(1), policy.MagnificationFor(models.AuthContext{}, testAddr(0x02)))
	})

	t.Run("orderbook returns garbage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		policy := NewAwardPolicy(server.URL, logger.NewNop())
		require.Equal(t, uint8(1), policy.MagnificationFor(models.AuthContext{}, testAddr(0x02)))
	})

	t.Run("orderbook unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		policy := NewAwardPolicy(server.URL, logger.NewNop())
		require.Equal(t, uint8(1), policy.MagnificationFor(models.AuthContext{}, testAddr(0x02)))
	})

	// A lookup failure never blocks the drip, and never grants the bonus
	// to a verified caller either.
	policy := NewAwardPolicy("", logger.NewNop())
	require.Equal(t, uint8(10), policy.MagnificationFor(models.AuthContext{Verified: true}, testAddr(0x02)))
}

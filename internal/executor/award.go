package executor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/core-coin/fontis/internal/models"
	"github.com/core-coin/fontis/pkg/logger"
)

const (
	// MagnificationVerified is the bonus for an authenticated identity.
	MagnificationVerified = 10
	// MagnificationRecognized is the bonus for a wallet the orderbook knows.
	MagnificationRecognized = 10
	// MagnificationBase applies when neither trust signal is present.
	MagnificationBase = 1
)

// Magnification combines the two independent trust signals into the drip
// multiplier. Each signal contributes its bonus; with neither, the base
// factor applies.
func Magnification(verified, recognized bool) uint8 {
	m := uint8(0)
	if verified {
		m += MagnificationVerified
	}
	if recognized {
		m += MagnificationRecognized
	}
	if m == 0 {
		m = MagnificationBase
	}
	return m
}

// AwardPolicy resolves the drip multiplier for a request. The recognized
// signal comes from the orderbook service; any lookup failure degrades to
// "not recognized" rather than blocking the drip.
type AwardPolicy struct {
	logger *logger.Logger

	orderbookURL string
	client       *http.Client
}

func NewAwardPolicy(orderbookURL string, logger *logger.Logger) *AwardPolicy {
	return &AwardPolicy{
		logger:       logger,
		orderbookURL: strings.TrimRight(orderbookURL, "/"),
		client:       &http.Client{Timeout: 5 * time.Second},
	}
}

// MagnificationFor computes the server-side multiplier from the caller's
// trust signals. The wallet is the drip destination, not an identity claim.
func (p *AwardPolicy) MagnificationFor(auth models.AuthContext, wallet string) uint8 {
	return Magnification(auth.Verified, p.isRecognized(wallet))
}

type orderCountResponse struct {
	Status string `json:"status"`
	Result int64  `json:"result"`
}

func (p *AwardPolicy) isRecognized(wallet string) bool {
	if p.orderbookURL == "" {
		return false
	}

	url := fmt.Sprintf("%s/user/%s/count", p.orderbookURL, wallet)
	resp, err := p.client.Get(url)
	if err != nil {
		p.logger.Error("Failed to query orderbook ", "error ", err, "wallet ", wallet)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.logger.Warn("Orderbook returned non-OK status ", "status ", resp.StatusCode)
		return false
	}

	var count orderCountResponse
	if err := json.NewDecoder(resp.Body).Decode(&count); err != nil {
		p.logger.Error("Failed to decode orderbook response ", "error ", err)
		return false
	}

	return count.Status == "Ok" && count.Result > 0
}

package executor

import (
	"time"

	"github.com/core-coin/fontis/internal/models"
)

// EligibilityGate decides when an identity may next claim a token. Both
// identity dimensions are consulted on every request; a claim under either
// dimension inside the window blocks the request.
type EligibilityGate struct {
	repo models.Repository
}

func NewEligibilityGate(repo models.Repository) *EligibilityGate {
	return &EligibilityGate{repo: repo}
}

// NextAccess returns the later of the source-IP and destination-wallet
// windows for the given token. A result in the past means eligible now.
func (g *EligibilityGate) NextAccess(ip, wallet, tokenAddress string) time.Time {
	byIP := g.repo.GetNextAccess(models.FieldIP, ip, tokenAddress)
	byWallet := g.repo.GetNextAccess(models.FieldToAddress, wallet, tokenAddress)

	if byWallet.After(byIP) {
		return byWallet
	}
	return byIP
}

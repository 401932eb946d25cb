package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/core-coin/fontis/internal/models"
)

// Memory is an in-memory Repository. It backs the test suite and mirrors the
// Postgres eligibility semantics, including fail-closed lookups.
type Memory struct {
	mu        sync.RWMutex
	tokens    []*models.Token
	transfers []*models.TokenTransfer
	nextID    int64

	// FailNextAccess forces GetNextAccess into its error path.
	FailNextAccess bool
	// FailCreateTransfer forces CreateTokenTransfer to fail.
	FailCreateTransfer bool
	// FailCreateToken forces CreateToken to fail.
	FailCreateToken bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) CreateToken(token *models.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailCreateToken {
		return fmt.Errorf("failed to create token: store unavailable")
	}
	for _, t := range m.tokens {
		if t.Symbol == token.Symbol {
			return fmt.Errorf("failed to create token: duplicate symbol %s", token.Symbol)
		}
	}
	m.tokens = append(m.tokens, token)
	return nil
}

func (m *Memory) CreateTokenTransfer(transfer *models.TokenTransfer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailCreateTransfer {
		return fmt.Errorf("failed to create token transfer: store unavailable")
	}
	m.nextID++
	transfer.ID = m.nextID
	if transfer.CreatedAt == 0 {
		transfer.CreatedAt = time.Now().Unix()
	}
	m.transfers = append(m.transfers, transfer)
	return nil
}

func (m *Memory) GetTokenByAddress(address string) (*models.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.tokens {
		if t.Address == address {
			return t, nil
		}
	}
	return nil, fmt.Errorf("failed to get token by address: record not found")
}

func (m *Memory) GetTokenBySymbol(symbol string) (*models.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.tokens {
		if t.Symbol == symbol {
			return t, nil
		}
	}
	return nil, fmt.Errorf("failed to get token by symbol: record not found")
}

func (m *Memory) GetAllTokens() ([]*models.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens := make([]*models.Token, len(m.tokens))
	copy(tokens, m.tokens)
	return tokens, nil
}

func (m *Memory) GetNextAccess(field models.AccessField, value, tokenAddress string) time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailNextAccess {
		return time.Now().Add(models.EligibilityWindow)
	}

	var last *models.TokenTransfer
	for _, tr := range m.transfers {
		if tr.TokenAddress != tokenAddress {
			continue
		}
		match := tr.IP == value
		if field == models.FieldToAddress {
			match = tr.ToAddress == value
		}
		if match && (last == nil || tr.CreatedAt > last.CreatedAt) {
			last = tr
		}
	}
	if last == nil {
		return time.Now().Add(-models.EligibilityWindow)
	}
	return time.Unix(last.CreatedAt, 0).Add(models.EligibilityWindow)
}

// Transfers returns the audit rows in creation order.
func (m *Memory) Transfers() []*models.TokenTransfer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	transfers := make([]*models.TokenTransfer, len(m.transfers))
	copy(transfers, m.transfers)
	return transfers
}

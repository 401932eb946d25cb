package executor

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// testAddr builds a well-formed 22-byte address from a repeated byte.
func testAddr(b byte) string {
	return "0x" + strings.Repeat(fmt.Sprintf("%02x", b), 22)
}

type chainCall struct {
	Token  string
	To     string
	Amount *big.Int
}

// stubChain is a scripted BlockchainService. Calls are recorded in order.
type stubChain struct {
	mu sync.Mutex

	address   string
	networkID *big.Int

	tokenBalance  *big.Int
	nativeBalance *big.Int

	failBalance  bool
	failTransfer bool
	failDeploy   bool

	deployedAddress string

	transfers []chainCall
	natives   []chainCall
	deploys   []string
	txCount   int
}

func newStubChain(address string) *stubChain {
	return &stubChain{
		address:       address,
		networkID:     big.NewInt(3),
		tokenBalance:  new(big.Int).Lsh(big.NewInt(1), 200),
		nativeBalance: new(big.Int).Lsh(big.NewInt(1), 200),
	}
}

func (c *stubChain) Address() string     { return c.address }
func (c *stubChain) NetworkID() *big.Int { return c.networkID }

func (c *stubChain) TokenBalance(tokenAddress, holder string) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failBalance {
		return nil, fmt.Errorf("rpc unavailable")
	}
	return new(big.Int).Set(c.tokenBalance), nil
}

func (c *stubChain) NativeBalance(holder string) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failBalance {
		return nil, fmt.Errorf("rpc unavailable")
	}
	return new(big.Int).Set(c.nativeBalance), nil
}

func (c *stubChain) TransferToken(tokenAddress, to string, amount *big.Int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failTransfer {
		return "", fmt.Errorf("nonce too low")
	}
	c.transfers = append(c.transfers, chainCall{Token: tokenAddress, To: to, Amount: new(big.Int).Set(amount)})
	c.txCount++
	return fmt.Sprintf("0xtx%04d", c.txCount), nil
}

func (c *stubChain) SendNative(to string, amount *big.Int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failTransfer {
		return "", fmt.Errorf("nonce too low")
	}
	c.natives = append(c.natives, chainCall{To: to, Amount: new(big.Int).Set(amount)})
	c.txCount++
	return fmt.Sprintf("0xtx%04d", c.txCount), nil
}

func (c *stubChain) DeployToken(name, symbol string, totalSupply *big.Int, decimals uint8) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failDeploy {
		return "", fmt.Errorf("out of energy")
	}
	c.deploys = append(c.deploys, symbol)
	if c.deployedAddress != "" {
		return c.deployedAddress, nil
	}
	return testAddr(0xcc), nil
}

func (c *stubChain) transferCalls() []chainCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	calls := make([]chainCall, len(c.transfers))
	copy(calls, c.transfers)
	return calls
}

func (c *stubChain) nativeCalls() []chainCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	calls := make([]chainCall, len(c.natives))
	copy(calls, c.natives)
	return calls
}

// stubAssets is a scripted AssetHost.
type stubAssets struct {
	mu      sync.Mutex
	err     error
	uploads []string
}

func (a *stubAssets) Upload(fileName string, data []byte) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return "", a.err
	}
	a.uploads = append(a.uploads, fileName)
	return "https://cdn.test/" + fileName, nil
}

func (a *stubAssets) uploaded() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	files := make([]string, len(a.uploads))
	copy(files, a.uploads)
	return files
}

// stubAlerter records operator alerts.
type stubAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *stubAlerter) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
}

func (a *stubAlerter) alerts() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	messages := make([]string, len(a.messages))
	copy(messages, a.messages)
	return messages
}

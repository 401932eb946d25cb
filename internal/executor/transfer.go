package executor

import (
	"fmt"
	"math/big"
	"time"

	"github.com/core-coin/fontis/internal/models"
)

// processTransfer runs a dequeued drip through the pipeline. Every failure is
// captured as a response value; the drain loop never sees an error.
func (e *Executor) processTransfer(req *models.TransferRequest) models.ExecutorResponse {
	if next := e.gate.NextAccess(req.IP, req.To, req.TokenAddress); next.After(time.Now()) {
		return cooldownResponse(next)
	}

	token, err := e.repo.GetTokenByAddress(req.TokenAddress)
	if err != nil {
		return errorResponse("Token not found")
	}

	limit, ok := new(big.Int).SetString(token.WithdrawLimit, 10)
	if !ok || limit.Sign() <= 0 {
		return errorResponse("Token withdraw limit is 0")
	}

	magnification := req.Magnification
	if magnification == 0 {
		magnification = MagnificationBase
	}
	amount := new(big.Int).Mul(limit, big.NewInt(int64(magnification)))

	var txHash string
	if req.TokenType == models.TokenNative {
		txHash, err = e.dripNative(req.To, amount, req.IP)
	} else {
		txHash, err = e.dripToken(e.faucetChain, req.TokenAddress, req.To, amount, req.IP)
	}
	if err != nil {
		return errorResponse(err.Error())
	}

	return successResponse(txHash, amount.String(), magnification)
}

// dripToken moves CBC20 tokens from the given signing identity and records
// the audit row. The broadcast transaction is the source of truth; the audit
// row is advisory, so a failed write is logged and the drip still succeeds.
func (e *Executor) dripToken(chain models.BlockchainService, tokenAddress, to string, amount *big.Int, ip string) (string, error) {
	if amount.Sign() == 0 {
		return "", fmt.Errorf("0 amount")
	}

	balance, err := chain.TokenBalance(tokenAddress, chain.Address())
	if err != nil {
		e.logger.Error("Failed to fetch balance ", "error ", err, "token ", tokenAddress)
		return "", fmt.Errorf("Failed to fetch balance")
	}
	if balance.Cmp(amount) < 0 {
		e.alert(fmt.Sprintf("Faucet balance too low for token %s: have %s, need %s", tokenAddress, balance, amount))
		return "", fmt.Errorf("Insufficient balance")
	}

	txHash, err := chain.TransferToken(tokenAddress, to, amount)
	if err != nil {
		e.logger.Error("Failed to send drip transaction ", "error ", err, "token ", tokenAddress, "to ", to)
		return "", fmt.Errorf("Failed to send transaction")
	}

	e.audit(chain, models.TokenCBC20, tokenAddress, to, amount, txHash, ip)
	return txHash, nil
}

// dripNative moves native XCB from the faucet identity. The pre-flight
// balance read mirrors the CBC20 path.
func (e *Executor) dripNative(to string, amount *big.Int, ip string) (string, error) {
	if amount.Sign() == 0 {
		return "", fmt.Errorf("0 amount")
	}

	chain := e.faucetChain
	balance, err := chain.NativeBalance(chain.Address())
	if err != nil {
		e.logger.Error("Failed to fetch native balance ", "error ", err)
		return "", fmt.Errorf("Failed to fetch balance")
	}
	if balance.Cmp(amount) < 0 {
		e.alert(fmt.Sprintf("Faucet native balance too low: have %s, need %s", balance, amount))
		return "", fmt.Errorf("Insufficient balance")
	}

	txHash, err := chain.SendNative(to, amount)
	if err != nil {
		e.logger.Error("Failed to send native drip ", "error ", err, "to ", to)
		return "", fmt.Errorf("Failed to send transaction")
	}

	e.audit(chain, models.TokenNative, models.ZeroAddress, to, amount, txHash, ip)
	return txHash, nil
}

func (e *Executor) audit(chain models.BlockchainService, tokenType models.TokenType, tokenAddress, to string, amount *big.Int, txHash, ip string) {
	transfer := &models.TokenTransfer{
		TokenAddress: tokenAddress,
		TokenType:    tokenType,
		TxHash:       txHash,
		FromAddress:  chain.Address(),
		ToAddress:    to,
		Amount:       amount.String(),
		NetworkID:    int(chain.NetworkID().Int64()),
		IP:           ip,
	}
	if err := e.repo.CreateTokenTransfer(transfer); err != nil {
		e.logger.Error("Failed to store token transfer ", "error ", err, "tx ", txHash, "to ", to, "amount ", amount)
	}
}

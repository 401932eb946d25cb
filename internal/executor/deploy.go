package executor

import (
	"fmt"
	"math/big"

	"github.com/core-coin/fontis/internal/models"
)

// WithdrawLimitDenominator fixes a deployed token's base drip at one
// billionth of its total supply.
const WithdrawLimitDenominator = 1_000_000_000

// Shares of the minted supply paid out after a deployment.
const (
	deployerSharePercent = 20
	faucetSharePercent   = 80
)

// processDeploy runs a dequeued deployment through the pipeline. Success is
// defined by the contract existing on chain: the follow-on supply
// distribution is best-effort because a missed payout can be repaired
// out-of-band while a contract cannot be un-deployed.
func (e *Executor) processDeploy(req *models.DeployRequest) models.ExecutorResponse {
	if req.Name == "" || req.Symbol == "" || req.DeployerAddress == "" ||
		req.FileName == "" || len(req.FileData) == 0 ||
		req.TotalSupply == nil || req.TotalSupply.Sign() == 0 || req.Decimals == 0 {
		return errorResponse("Invalid request")
	}

	// The symbol check runs here, at dequeue time, so a duplicate queued
	// behind its twin is caught once the first one's row is visible.
	if _, err := e.repo.GetTokenBySymbol(req.Symbol); err == nil {
		return errorResponse("Token with same symbol already exists")
	}

	logoURL, err := e.assets.Upload(req.FileName, req.FileData)
	if err != nil {
		e.logger.Error("Failed to upload token logo ", "error ", err, "file ", req.FileName)
		return errorResponse(err.Error())
	}

	address, err := e.deployChain.DeployToken(req.Name, req.Symbol, req.TotalSupply, req.Decimals)
	if err != nil {
		e.logger.Error("Failed to deploy token ", "error ", err, "symbol ", req.Symbol)
		e.alert(fmt.Sprintf("Token deployment failed for %s (%s): %s", req.Name, req.Symbol, err))
		return errorResponse("Failed to deploy contract")
	}

	token := &models.Token{
		Address:       address,
		TokenType:     models.TokenCBC20,
		Name:          req.Name,
		Symbol:        req.Symbol,
		LogoURL:       logoURL,
		NetworkID:     int(e.deployChain.NetworkID().Int64()),
		Decimals:      int(req.Decimals),
		WithdrawLimit: withdrawLimit(req.TotalSupply, req.Decimals).String(),
		CreatedBy:     req.DeployerAddress,
	}
	if err := e.repo.CreateToken(token); err != nil {
		// The contract exists; losing the metadata row must not fail the
		// deployment from the caller's point of view.
		e.logger.Error("Failed to store token metadata ", "error ", err, "address ", address)
	}

	deployerShare := supplyShare(req.TotalSupply, req.Decimals, deployerSharePercent)
	faucetShare := supplyShare(req.TotalSupply, req.Decimals, faucetSharePercent)

	if _, err := e.dripToken(e.deployChain, address, req.DeployerAddress, deployerShare, req.IP); err != nil {
		e.logger.Error("Failed to send deployer share ", "error ", err, "token ", address)
	}
	if _, err := e.dripToken(e.deployChain, address, e.faucetChain.Address(), faucetShare, req.IP); err != nil {
		e.logger.Error("Failed to fund faucet holding ", "error ", err, "token ", address)
	}

	e.alert(fmt.Sprintf("Token %s (%s) deployed at %s", req.Name, req.Symbol, address))

	// The contract address travels in the tx hash field; the reported
	// amount is the faucet's own 80% funding.
	return successResponse(address, faucetShare.String(), MagnificationBase)
}

// withdrawLimit computes floor(supply * 10^decimals / denominator).
// Multiplying before dividing keeps supplies below the denominator from
// truncating to zero.
func withdrawLimit(totalSupply *big.Int, decimals uint8) *big.Int {
	scaled := new(big.Int).Mul(totalSupply, pow10(decimals))
	return scaled.Div(scaled, big.NewInt(WithdrawLimitDenominator))
}

func supplyShare(totalSupply *big.Int, decimals uint8, percent int64) *big.Int {
	share := new(big.Int).Mul(totalSupply, big.NewInt(percent))
	share.Div(share, big.NewInt(100))
	return share.Mul(share, pow10(decimals))
}

func pow10(decimals uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}

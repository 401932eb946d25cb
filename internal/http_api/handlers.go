package http_api

import (
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/core-coin/fontis/internal/models"
	"github.com/core-coin/fontis/pkg/validation"
)

// DeployData is the JSON carried in the "data" part of the multipart
// deploy request.
type DeployData struct {
	Name            string `json:"name" binding:"required"`
	Symbol          string `json:"symbol" binding:"required"`
	TotalSupply     string `json:"total_supply" binding:"required"`
	Decimals        uint8  `json:"decimals"`
	DeployerAddress string `json:"deployer_address" binding:"required"`
}

// DeployResponse is the success payload of a deploy request.
type DeployResponse struct {
	ContractAddress string `json:"contract_address"`
}

// HealthResponse is the static health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

func errorEnvelope(message string) models.ExecutorResponse {
	return models.ExecutorResponse{
		Status: models.StatusError,
		Error:  &models.ErrorData{Message: message},
	}
}

// health is a handler for the / and /health endpoints.
func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": models.StatusSuccess,
		"data":   HealthResponse{Status: "OK"},
	})
}

// tokens is a handler for the /tokens endpoint. It lists every token the
// faucet can drip or has deployed.
func (s *HTTPServer) tokens(c *gin.Context) {
	tokens, err := s.executor.Tokens()
	if err != nil {
		s.logger.Error("Failed to fetch tokens", "error", err)
		c.JSON(http.StatusInternalServerError, errorEnvelope(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": models.StatusSuccess,
		"data":   tokens,
	})
}

// withdraw is a handler for the /withdraw endpoint. The request is queued
// for the executor and the handler waits for its reply, so the drip outcome
// is returned in-band. Any magnification set by the caller is discarded by
// the executor and recomputed from the caller's trust context.
func (s *HTTPServer) withdraw(c *gin.Context) {
	var req models.TransferRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid withdraw request body", "error", err)
		c.JSON(http.StatusBadRequest, errorEnvelope("Invalid request body: "+err.Error()))
		return
	}

	if err := validation.ValidateAddress(req.To); err != nil {
		s.logger.Debug("Invalid recipient address", "error", err, "address", req.To)
		c.JSON(http.StatusBadRequest, errorEnvelope("Invalid recipient address: "+err.Error()))
		return
	}

	switch req.TokenType {
	case models.TokenCBC20:
		if err := validation.ValidateAddress(req.TokenAddress); err != nil {
			s.logger.Debug("Invalid token address", "error", err, "address", req.TokenAddress)
			c.JSON(http.StatusBadRequest, errorEnvelope("Invalid token address: "+err.Error()))
			return
		}
	case models.TokenNative:
	default:
		c.JSON(http.StatusBadRequest, errorEnvelope("Invalid token type: "+string(req.TokenType)))
		return
	}

	req.IP = c.ClientIP()
	auth := s.auth.Authenticate(c)

	reply := s.executor.SubmitTransfer(&req, auth)

	select {
	case response, ok := <-reply:
		if !ok {
			c.JSON(http.StatusInternalServerError, errorEnvelope("Executor dropped the response channel"))
			return
		}
		c.JSON(http.StatusOK, response)
	case <-time.After(s.transferTimeout):
		s.logger.Error("Withdraw request timed out", "to", req.To, "token", req.TokenAddress)
		c.JSON(http.StatusRequestTimeout, errorEnvelope("Request timed out"))
	}
}

// deployCBC20 is a handler for the /deploy/cbc20 endpoint. It expects a
// multipart form with a "file" part (token logo) and a "data" part (JSON
// token fields). Deploys require a verified caller.
func (s *HTTPServer) deployCBC20(c *gin.Context) {
	auth := s.auth.Authenticate(c)
	if !auth.Verified {
		c.JSON(http.StatusUnauthorized, errorEnvelope("Please authenticate to deploy your tokens"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope("No file uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("Failed to open uploaded file", "error", err)
		c.JSON(http.StatusBadRequest, errorEnvelope("Failed to read uploaded file"))
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("Failed to read uploaded file", "error", err)
		c.JSON(http.StatusBadRequest, errorEnvelope("Failed to read uploaded file"))
		return
	}

	// The original file name is discarded; only the extension survives.
	ext := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	fileName := uuid.New().String()
	if ext != "" {
		fileName = fileName + "." + ext
	}

	var data DeployData
	if err := json.Unmarshal([]byte(c.PostForm("data")), &data); err != nil {
		s.logger.Debug("Invalid deploy data", "error", err)
		c.JSON(http.StatusBadRequest, errorEnvelope("Invalid JSON data: "+err.Error()))
		return
	}

	if err := validation.ValidateSymbol(data.Symbol); err != nil {
		s.logger.Debug("Invalid token symbol", "error", err, "symbol", data.Symbol)
		c.JSON(http.StatusBadRequest, errorEnvelope("Invalid token symbol: "+err.Error()))
		return
	}

	if err := validation.ValidateAddress(data.DeployerAddress); err != nil {
		s.logger.Debug("Invalid deployer address", "error", err, "address", data.DeployerAddress)
		c.JSON(http.StatusBadRequest, errorEnvelope("Invalid deployer address: "+err.Error()))
		return
	}

	totalSupply, ok := new(big.Int).SetString(data.TotalSupply, 10)
	if !ok || totalSupply.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, errorEnvelope("Invalid total supply"))
		return
	}

	req := &models.DeployRequest{
		Name:            data.Name,
		Symbol:          data.Symbol,
		TotalSupply:     totalSupply,
		Decimals:        data.Decimals,
		DeployerAddress: data.DeployerAddress,
		FileName:        fileName,
		FileData:        fileData,
		IP:              c.ClientIP(),
	}

	reply := s.executor.SubmitDeploy(req)

	select {
	case response, ok := <-reply:
		if !ok {
			c.JSON(http.StatusInternalServerError, errorEnvelope("Executor dropped the response channel"))
			return
		}
		if response.Status == models.StatusSuccess && response.Data != nil {
			c.JSON(http.StatusOK, gin.H{
				"status": models.StatusSuccess,
				"data":   DeployResponse{ContractAddress: response.Data.TxHash},
			})
			return
		}
		message := "Something went wrong"
		if response.Error != nil {
			message = response.Error.Message
		}
		c.JSON(http.StatusInternalServerError, errorEnvelope(message))
	case <-time.After(s.deployTimeout):
		s.logger.Error("Deploy request timed out", "symbol", data.Symbol)
		c.JSON(http.StatusRequestTimeout, errorEnvelope("Request timed out"))
	}
}

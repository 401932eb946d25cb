package executor

import (
	"time"

	"github.com/core-coin/fontis/internal/models"
)

// CooldownMessage is shown together with the next-eligible timestamp.
const CooldownMessage = "You have already claimed this in the last 24hrs. You can claim again after"

func successResponse(txHash, amount string, magnification uint8) models.ExecutorResponse {
	return models.ExecutorResponse{
		Status: models.StatusSuccess,
		Data: &models.DripData{
			TxHash:        txHash,
			Amount:        amount,
			Magnification: magnification,
		},
	}
}

func errorResponse(message string) models.ExecutorResponse {
	return models.ExecutorResponse{
		Status: models.StatusError,
		Error:  &models.ErrorData{Message: message},
	}
}

// cooldownResponse carries NextAccess, which is what marks the failure as
// retryable to the caller.
func cooldownResponse(nextAccess time.Time) models.ExecutorResponse {
	return models.ExecutorResponse{
		Status: models.StatusError,
		Error: &models.ErrorData{
			Message:    CooldownMessage,
			NextAccess: &nextAccess,
		},
	}
}

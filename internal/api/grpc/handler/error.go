package handler

import (
	"errors"

	"github.com/dtroode/marketmanager-server/internal/api/grpc/contract"
	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
)

// failure converts a service error into the result envelope fields.
// Uncoded errors are logged and reported as INTERNAL_ERROR with their message.
func failure(lg *logger.Logger, op string, err error) contract.Failure {
	code := model.CodeOf(err)
	if code == model.CodeInternal {
		lg.Error("Handler: operation failed",
			"operation", op,
			"error", err.Error())
	} else {
		lg.Debug("Handler: operation rejected",
			"operation", op,
			"code", string(code))
	}

	return contract.Failure{
		Error:     model.MessageOf(err),
		ErrorCode: code,
	}
}

// expiryDate returns the expiry date attached to a LICENSE_EXPIRED error.
func expiryDate(err error) string {
	var e *model.Error
	if errors.As(err, &e) {
		return e.ExpiryDate
	}
	return ""
}

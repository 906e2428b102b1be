package service

import (
	"Landmark/pkg/log"
	"Landmark/pkg/response"
	"errors"

	"go.uber.org/zap"
)

// internalError 记录真实原因，只向调用方返回通用错误
func internalError(msg string, err error, fields ...zap.Field) error {
	var be *response.BizError
	if errors.As(err, &be) {
		return be
	}
	log.L.Error(msg, append(fields, zap.Error(err))...)
	return response.Internal()
}

package response

import (
	"Landmark/pkg/log"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BizError 可由调用方修正的业务错误，Code 即 HTTP 状态码
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func NotFound(format string, args ...any) *BizError {
	return NewError(http.StatusNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) *BizError {
	return NewError(http.StatusConflict, fmt.Sprintf(format, args...))
}

func Validation(format string, args ...any) *BizError {
	return NewError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// Internal hides the cause from the caller; log it before returning.
func Internal() *BizError {
	return NewError(http.StatusInternalServerError, "Internal server error")
}

// IsCode reports whether err is a BizError carrying code.
func IsCode(err error, code int) bool {
	var be *BizError
	return errors.As(err, &be) && be.Code == code
}

// ErrorMiddleware 兜底 panic 与 c.Error 记录的错误
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				c.JSON(http.StatusInternalServerError, Response{
					Code: http.StatusInternalServerError,
					Msg:  "Internal server error",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var be *BizError
			if errors.As(err, &be) {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, http.StatusInternalServerError, "Internal server error")
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}

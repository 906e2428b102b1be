package handler

import (
	"Landmark/pkg/context"
	"Landmark/pkg/response"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUser 鉴权中间件写入的用户 ID
func currentUser(c *gin.Context) (uint64, error) {
	userID, err := context.GetUserID(c)
	if err != nil {
		return 0, response.NewError(http.StatusUnauthorized, "Unauthorized")
	}
	return userID, nil
}

func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.Validation("Invalid %s", name)
	}
	return id, nil
}

func bindError(err error) error {
	return response.Validation("Invalid request: %s", err.Error())
}

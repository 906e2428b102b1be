package handler

import (
	"Landmark/pkg/context"
	"Landmark/pkg/response"
	"Landmark/service"
	"Landmark/types"

	"github.com/gin-gonic/gin"
)

type Checkin struct {
	CheckinService service.ICheckinService
}

func (h *Checkin) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/checkins")
	g.POST("", context.Wrap(h.Create))
	g.GET("", context.Wrap(h.List))
}

func (h *Checkin) Create(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.CheckinReq
	if err = c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	resp, err := h.CheckinService.Checkin(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, resp)
	return nil
}

func (h *Checkin) List(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.ListCheckinsReq
	if err = c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}

	resp, err := h.CheckinService.ListCheckins(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

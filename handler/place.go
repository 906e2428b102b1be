package handler

import (
	"Landmark/pkg/context"
	"Landmark/pkg/response"
	"Landmark/service"
	"Landmark/types"

	"github.com/gin-gonic/gin"
)

type Place struct {
	PlaceService service.IPlaceService
}

func (h *Place) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/places")
	g.GET("/nearby", context.Wrap(h.Nearby))
	g.GET("/:id", context.Wrap(h.Detail))
	g.POST("/:id/redeem", context.Wrap(h.Redeem))
}

func (h *Place) Nearby(c *gin.Context) error {
	var req types.NearbyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}
	places, err := h.PlaceService.Nearby(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, places)
	return nil
}

func (h *Place) Detail(c *gin.Context) error {
	placeID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	place, err := h.PlaceService.GetPlace(c.Request.Context(), placeID)
	if err != nil {
		return err
	}
	response.Success(c, place)
	return nil
}

func (h *Place) Redeem(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	placeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.PlaceService.Redeem(c.Request.Context(), userID, placeID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

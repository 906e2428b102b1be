package handler

import (
	"Landmark/pkg/context"
	"Landmark/pkg/response"
	"Landmark/service"
	"Landmark/types"
	"time"

	"github.com/gin-gonic/gin"
)

type Point struct {
	PointService service.IPointService
}

func (p *Point) RegisterRouter(r gin.IRouter) {
	pointGroup := r.Group("/v1/points")
	pointGroup.GET("/balance", context.Wrap(p.Balance))
	pointGroup.GET("/records", context.Wrap(p.GetRecords))
	pointGroup.GET("/stats", context.Wrap(p.Stats))
}

func (p *Point) Balance(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	resp, err := p.PointService.GetAccountDashboard(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Point) GetRecords(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.ListPointRecordsReq
	if err = c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}

	resp, err := p.PointService.ListPointRecords(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Point) Stats(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.PointStatsReq
	if err = c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}
	var from, to time.Time
	if req.From != nil {
		from = *req.From
	}
	if req.To != nil {
		to = *req.To
	}

	resp, err := p.PointService.Stats(c.Request.Context(), userID, from, to)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

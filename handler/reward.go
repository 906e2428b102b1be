package handler

import (
	"Landmark/pkg/context"
	"Landmark/pkg/response"
	"Landmark/service"

	"github.com/gin-gonic/gin"
)

type Reward struct {
	RewardService service.IRewardService
}

func (h *Reward) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/rewards")
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Detail))
	g.POST("/:id/redeem", context.Wrap(h.Redeem))
}

func (h *Reward) List(c *gin.Context) error {
	rewards, err := h.RewardService.ListAvailable(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, rewards)
	return nil
}

func (h *Reward) Detail(c *gin.Context) error {
	rewardID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	reward, err := h.RewardService.GetReward(c.Request.Context(), rewardID)
	if err != nil {
		return err
	}
	response.Success(c, reward)
	return nil
}

// Redeem 不幂等，客户端重试会产生新的兑换
func (h *Reward) Redeem(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rewardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.RewardService.Redeem(c.Request.Context(), userID, rewardID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

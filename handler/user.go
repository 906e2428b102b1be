package handler

import (
	"Landmark/pkg/context"
	"Landmark/pkg/response"
	"Landmark/service"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService   service.IUserService
	RewardService service.IRewardService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/user")
	g.GET("/profile", context.Wrap(u.Profile))
	g.POST("/bookmarks/:placeId", context.Wrap(u.Bookmark))
	g.DELETE("/bookmarks/:placeId", context.Wrap(u.Unbookmark))
	g.GET("/redemptions", context.Wrap(u.Redemptions))
	g.POST("/redemptions/:id/use", context.Wrap(u.UseRedemption))
}

func (u *User) Profile(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	profile, err := u.UserService.Profile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) Bookmark(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	placeID, err := pathID(c, "placeId")
	if err != nil {
		return err
	}
	ids, err := u.UserService.Bookmark(c.Request.Context(), userID, placeID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"bookmarks": ids})
	return nil
}

func (u *User) Unbookmark(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	placeID, err := pathID(c, "placeId")
	if err != nil {
		return err
	}
	ids, err := u.UserService.Unbookmark(c.Request.Context(), userID, placeID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"bookmarks": ids})
	return nil
}

func (u *User) Redemptions(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	items, err := u.RewardService.ListRedeemed(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

// UseRedemption 到店核销
func (u *User) UseRedemption(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	redemptionID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := u.RewardService.MarkUsed(c.Request.Context(), userID, redemptionID)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

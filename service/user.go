package service

import (
	"Landmark/dao"
	"Landmark/pkg/response"
	"Landmark/types"
	"context"

	"go.uber.org/zap"
)

type UserService struct {
	UserDAO       *dao.Users
	PlaceDAO      *dao.Place
	RedemptionDAO *dao.Redemption
}

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Profile(ctx context.Context, userID uint64) (*types.UserProfile, error)
	Bookmark(ctx context.Context, userID, placeID uint64) ([]uint64, error)
	Unbookmark(ctx context.Context, userID, placeID uint64) ([]uint64, error)
}

func (s *UserService) Profile(ctx context.Context, userID uint64) (*types.UserProfile, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if dao.IsNotFound(err) {
		return nil, response.NotFound("User not found")
	}
	if err != nil {
		return nil, internalError("profile load user", err, zap.Uint64("user_id", userID))
	}

	bookmarks, err := s.UserDAO.Bookmarks(ctx, userID)
	if err != nil {
		return nil, internalError("profile load bookmarks", err, zap.Uint64("user_id", userID))
	}
	redeemed, err := s.RedemptionDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError("profile load redemptions", err, zap.Uint64("user_id", userID))
	}

	profile := &types.UserProfile{
		ID:              user.ID,
		Nickname:        user.Nickname,
		PointsTotal:     user.PointsTotal,
		Bookmarks:       bookmarks,
		RedeemedRewards: make([]types.RedeemedReward, 0, len(redeemed)),
	}
	if profile.Bookmarks == nil {
		profile.Bookmarks = []uint64{}
	}
	for i := range redeemed {
		profile.RedeemedRewards = append(profile.RedeemedRewards, redeemedReward(&redeemed[i]))
	}
	return profile, nil
}

// Bookmark 收藏是集合语义，重复收藏不报错
func (s *UserService) Bookmark(ctx context.Context, userID, placeID uint64) ([]uint64, error) {
	if _, err := s.PlaceDAO.FindById(ctx, placeID); err != nil {
		if dao.IsNotFound(err) {
			return nil, response.NotFound("Place not found")
		}
		return nil, internalError("bookmark load place", err, zap.Uint64("place_id", placeID))
	}
	if err := s.UserDAO.AddBookmark(ctx, userID, placeID); err != nil {
		return nil, internalError("add bookmark", err, zap.Uint64("user_id", userID))
	}
	return s.bookmarks(ctx, userID)
}

func (s *UserService) Unbookmark(ctx context.Context, userID, placeID uint64) ([]uint64, error) {
	if err := s.UserDAO.RemoveBookmark(ctx, userID, placeID); err != nil {
		return nil, internalError("remove bookmark", err, zap.Uint64("user_id", userID))
	}
	return s.bookmarks(ctx, userID)
}

func (s *UserService) bookmarks(ctx context.Context, userID uint64) ([]uint64, error) {
	ids, err := s.UserDAO.Bookmarks(ctx, userID)
	if err != nil {
		return nil, internalError("list bookmarks", err, zap.Uint64("user_id", userID))
	}
	if ids == nil {
		ids = []uint64{}
	}
	return ids, nil
}

package service

import (
	"Landmark/dao"
	"Landmark/models"
	"Landmark/pkg/response"
	"Landmark/pkg/snowflake"
	"Landmark/types"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RewardService struct {
	RewardDAO     *dao.Reward
	UserDAO       *dao.Users
	RedemptionDAO *dao.Redemption
	PointService  IPointService
	Clock         Clock
}

var _ IRewardService = (*RewardService)(nil)

type IRewardService interface {
	Redeem(ctx context.Context, userID, rewardID uint64) (*types.RedeemRewardResp, error)
	GetReward(ctx context.Context, rewardID uint64) (*types.RewardDetail, error)
	ListAvailable(ctx context.Context) ([]types.RewardDetail, error)

	ListRedeemed(ctx context.Context, userID uint64) ([]types.RedeemedReward, error)
	MarkUsed(ctx context.Context, userID, redemptionID uint64) (*types.RedeemedReward, error)
}

func insufficientPoints(cost, balance int64) error {
	return response.Validation("Insufficient points. You need %d points but have %d.", cost, balance)
}

// Redeem 用积分兑换奖品，每次调用都是一次独立兑换。
// 校验顺序：奖品存在 → 已上架 → 未过期 → 用户存在 → 余额充足。
func (s *RewardService) Redeem(ctx context.Context, userID, rewardID uint64) (*types.RedeemRewardResp, error) {
	reward, err := s.RewardDAO.FindById(ctx, rewardID)
	if dao.IsNotFound(err) {
		return nil, response.NotFound("Reward not found")
	}
	if err != nil {
		return nil, internalError("redeem load reward", err, zap.Uint64("reward_id", rewardID))
	}
	if !reward.IsActive {
		return nil, response.Validation("Reward is not active")
	}
	if reward.Expired(s.Clock.now()) {
		return nil, response.Validation("Reward has expired")
	}

	var remaining int64
	err = s.PointService.Transact(ctx, userID, func(tx *gorm.DB, ledger *Ledger) error {
		user, err := s.UserDAO.WithDB(tx).FindForUpdate(ctx, userID)
		if dao.IsNotFound(err) {
			return response.NotFound("User not found")
		}
		if err != nil {
			return err
		}
		if user.PointsTotal < reward.PointsCost {
			return insufficientPoints(reward.PointsCost, user.PointsTotal)
		}

		sourceID := snowflake.GenSourceID("reward:")
		entry, err := ledger.Debit(ctx, Change{
			UserID:     userID,
			Amount:     reward.PointsCost,
			ChangeType: models.TypeRewardExchange,
			SourceID:   sourceID,
			Remark:     fmt.Sprintf("Redeemed reward: %s", reward.Name),
			Meta: map[string]any{
				"reward_id": reward.ID,
			},
		})
		if errors.Is(err, dao.ErrInsufficientPoints) {
			// 条件扣减兜底：锁失效时余额可能已被其他请求扣减
			balance := user.PointsTotal
			if latest, e := s.UserDAO.WithDB(tx).FindById(ctx, userID); e == nil {
				balance = latest.PointsTotal
			}
			return insufficientPoints(reward.PointsCost, balance)
		}
		if err != nil {
			return err
		}

		remaining = entry.Balance
		return s.RedemptionDAO.WithDB(tx).Create(ctx, &models.UserRedeemedReward{
			UserID:           userID,
			RewardID:         reward.ID,
			Name:             reward.Name,
			ShortDescription: reward.ShortDescription,
			PointsCost:       reward.PointsCost,
			SourceID:         sourceID,
			RedeemedAt:       ledger.Now(),
		})
	})
	if err != nil {
		return nil, internalError("redeem reward", err, zap.Uint64("user_id", userID), zap.Uint64("reward_id", rewardID))
	}

	return &types.RedeemRewardResp{
		Reward: rewardSummary(reward),
		User:   types.RedeemUser{RemainingPoints: remaining},
	}, nil
}

func rewardSummary(r *models.Reward) types.RewardSummary {
	return types.RewardSummary{
		ID:               r.ID,
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		Type:             r.Type,
		PointsCost:       r.PointsCost,
	}
}

func rewardDetail(r *models.Reward) types.RewardDetail {
	return types.RewardDetail{
		RewardSummary: rewardSummary(r),
		Description:   r.Description,
		ValidUntil:    r.ValidUntil,
	}
}

func (s *RewardService) GetReward(ctx context.Context, rewardID uint64) (*types.RewardDetail, error) {
	reward, err := s.RewardDAO.FindById(ctx, rewardID)
	if dao.IsNotFound(err) {
		return nil, response.NotFound("Reward not found")
	}
	if err != nil {
		return nil, internalError("get reward", err, zap.Uint64("reward_id", rewardID))
	}
	detail := rewardDetail(reward)
	return &detail, nil
}

func (s *RewardService) ListAvailable(ctx context.Context) ([]types.RewardDetail, error) {
	rewards, err := s.RewardDAO.ListAvailable(ctx, s.Clock.now())
	if err != nil {
		return nil, internalError("list rewards", err)
	}
	resp := make([]types.RewardDetail, 0, len(rewards))
	for i := range rewards {
		resp = append(resp, rewardDetail(&rewards[i]))
	}
	return resp, nil
}

func redeemedReward(r *models.UserRedeemedReward) types.RedeemedReward {
	return types.RedeemedReward{
		ID:               r.ID,
		RewardID:         r.RewardID,
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		PointsCost:       r.PointsCost,
		RedeemedAt:       r.RedeemedAt,
		Used:             r.Used,
		UsedAt:           r.UsedAt,
	}
}

func (s *RewardService) ListRedeemed(ctx context.Context, userID uint64) ([]types.RedeemedReward, error) {
	items, err := s.RedemptionDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError("list redeemed rewards", err, zap.Uint64("user_id", userID))
	}
	resp := make([]types.RedeemedReward, 0, len(items))
	for i := range items {
		resp = append(resp, redeemedReward(&items[i]))
	}
	return resp, nil
}

// MarkUsed 核销已兑换的奖品，只能核销一次
func (s *RewardService) MarkUsed(ctx context.Context, userID, redemptionID uint64) (*types.RedeemedReward, error) {
	item, err := s.RedemptionDAO.MarkUsed(ctx, userID, redemptionID, s.Clock.now())
	switch {
	case dao.IsNotFound(err):
		return nil, response.NotFound("Redeemed reward not found")
	case errors.Is(err, dao.ErrAlreadyUsed):
		return nil, response.Conflict("Reward has already been used")
	case err != nil:
		return nil, internalError("mark reward used", err, zap.Uint64("redemption_id", redemptionID))
	}
	resp := redeemedReward(item)
	return &resp, nil
}

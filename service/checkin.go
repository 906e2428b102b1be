package service

import (
	"Landmark/config"
	"Landmark/dao"
	"Landmark/models"
	"Landmark/pkg/geo"
	"Landmark/pkg/response"
	"Landmark/pkg/snowflake"
	"Landmark/types"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CheckinAward 每次有效打卡奖励的积分
const CheckinAward int64 = 10

type CheckinService struct {
	Config       *config.Config
	PlaceDAO     *dao.Place
	CheckinDAO   *dao.Checkin
	PointService IPointService
	Clock        Clock
}

var _ ICheckinService = (*CheckinService)(nil)

type ICheckinService interface {
	Checkin(ctx context.Context, userID uint64, req *types.CheckinReq) (*types.CheckinResp, error)
	ListCheckins(ctx context.Context, userID uint64, req *types.ListCheckinsReq) (*types.ListCheckinsResp, error)
}

// Checkin 校验距离与当日唯一性后发放积分。
// 同日重复优先于距离判断：当天已打卡的地点无论距离多少都返回冲突。
func (s *CheckinService) Checkin(ctx context.Context, userID uint64, req *types.CheckinReq) (*types.CheckinResp, error) {
	claimed, ok := geo.FromPair(req.Coordinates)
	if !ok {
		return nil, response.Validation("Invalid coordinates: expected [longitude, latitude] within valid ranges")
	}

	place, err := s.PlaceDAO.FindById(ctx, req.PlaceID)
	if dao.IsNotFound(err) {
		return nil, response.NotFound("Place not found")
	}
	if err != nil {
		return nil, internalError("checkin load place", err, zap.Uint64("place_id", req.PlaceID))
	}

	var (
		checkin  *models.Checkin
		entry    *models.PointsLog
		distance = geo.Distance(claimed, place.Point())
	)
	err = s.PointService.Transact(ctx, userID, func(tx *gorm.DB, ledger *Ledger) error {
		now := ledger.Now()
		day := now.In(s.Config.Location()).Format(models.CheckinDayLayout)
		checkinDAO := s.CheckinDAO.WithDB(tx)

		exists, err := checkinDAO.ExistsOnDay(ctx, userID, place.ID, day)
		if err != nil {
			return err
		}
		if exists {
			checkinRejectionsTotal.WithLabelValues("duplicate").Inc()
			return response.Conflict("You have already checked in at this place today")
		}

		if err = geo.InBand(distance); err != nil {
			return bandError(err, distance)
		}

		checkin = &models.Checkin{
			ID:         snowflake.GenID(),
			UserID:     userID,
			PlaceID:    place.ID,
			CheckinDay: day,
			Longitude:  claimed.Lng,
			Latitude:   claimed.Lat,
			Distance:   distance,
			CreatedAt:  now,
		}
		if err = checkinDAO.Create(ctx, checkin); err != nil {
			if dao.IsDuplicateKey(err) {
				checkinRejectionsTotal.WithLabelValues("duplicate").Inc()
				return response.Conflict("You have already checked in at this place today")
			}
			return fmt.Errorf("create checkin: %w", err)
		}

		entry, err = ledger.Credit(ctx, Change{
			UserID:     userID,
			Amount:     CheckinAward,
			ChangeType: models.TypeCheckinReward,
			SourceID:   "checkin:" + strconv.FormatInt(checkin.ID, 10),
			Remark:     fmt.Sprintf("Check-in at %s", place.Name),
			Meta: map[string]any{
				"place_id":   place.ID,
				"checkin_id": strconv.FormatInt(checkin.ID, 10),
				"distance":   math.Round(distance*100) / 100,
			},
		})
		return err
	})
	if dao.IsNotFound(err) {
		return nil, response.NotFound("User not found")
	}
	if err != nil {
		return nil, internalError("checkin", err, zap.Uint64("user_id", userID), zap.Uint64("place_id", place.ID))
	}

	return &types.CheckinResp{
		CheckinID: strconv.FormatInt(checkin.ID, 10),
		Place: types.CheckinPlace{
			ID:       place.ID,
			Name:     place.Name,
			Distance: int64(math.Round(distance)),
		},
		Points: types.CheckinPoints{
			Awarded: CheckinAward,
			Total:   entry.Balance,
		},
		Timestamp: checkin.CreatedAt,
	}, nil
}

func bandError(err error, distance float64) error {
	switch {
	case errors.Is(err, geo.ErrTooClose):
		checkinRejectionsTotal.WithLabelValues("too_close").Inc()
		return response.Validation("Too close to the place to check in (%.1fm, must be more than %.0fm)",
			distance, geo.MinCheckinDistance)
	case errors.Is(err, geo.ErrTooFar):
		checkinRejectionsTotal.WithLabelValues("too_far").Inc()
		return response.Validation("Too far from the place to check in (%.1fm, must be within %.0fm)",
			distance, geo.MaxCheckinDistance)
	}
	return err
}

func (s *CheckinService) ListCheckins(ctx context.Context, userID uint64, req *types.ListCheckinsReq) (*types.ListCheckinsResp, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	items, err := s.CheckinDAO.ListByUser(ctx, userID, req.Cursor, limit+1)
	if err != nil {
		return nil, internalError("list checkins", err, zap.Uint64("user_id", userID))
	}

	resp := &types.ListCheckinsResp{Checkins: make([]types.CheckinItem, 0, len(items))}
	if len(items) > limit {
		resp.HasMore = true
		items = items[:limit]
		resp.NextCursor = strconv.FormatInt(items[len(items)-1].ID, 10)
	}
	for _, c := range items {
		resp.Checkins = append(resp.Checkins, types.CheckinItem{
			CheckinID:   strconv.FormatInt(c.ID, 10),
			PlaceID:     c.PlaceID,
			Coordinates: []float64{c.Longitude, c.Latitude},
			Distance:    int64(math.Round(c.Distance)),
			Timestamp:   c.CreatedAt,
		})
	}
	return resp, nil
}

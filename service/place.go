package service

import (
	"Landmark/dao"
	"Landmark/models"
	"Landmark/pkg/geo"
	"Landmark/pkg/response"
	"Landmark/pkg/snowflake"
	"Landmark/types"
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PlaceService struct {
	PlaceDAO     *dao.Place
	PointService IPointService
}

var _ IPlaceService = (*PlaceService)(nil)

type IPlaceService interface {
	Redeem(ctx context.Context, userID, placeID uint64) (*types.RedeemPlaceResp, error)
	GetPlace(ctx context.Context, placeID uint64) (*types.PlaceDetail, error)
	Nearby(ctx context.Context, req *types.NearbyReq) ([]types.PlaceDetail, error)
}

// Redeem 到店兑换积分。
// 不做每日次数限制，同一地点可以重复兑换。
func (s *PlaceService) Redeem(ctx context.Context, userID, placeID uint64) (*types.RedeemPlaceResp, error) {
	place, err := s.PlaceDAO.FindById(ctx, placeID)
	if dao.IsNotFound(err) {
		return nil, response.NotFound("Place not found")
	}
	if err != nil {
		return nil, internalError("place redeem load place", err, zap.Uint64("place_id", placeID))
	}
	if !place.RedemptionEligible || place.RedemptionPointsCost <= 0 {
		return nil, response.Validation("Place is not eligible for redemption")
	}

	var total int64
	err = s.PointService.Transact(ctx, userID, func(tx *gorm.DB, ledger *Ledger) error {
		entry, err := ledger.Credit(ctx, Change{
			UserID:     userID,
			Amount:     place.RedemptionPointsCost,
			ChangeType: models.TypePlaceRedeem,
			SourceID:   snowflake.GenSourceID("place:"),
			Remark:     fmt.Sprintf("Redemption at %s", place.Name),
			Meta: map[string]any{
				"place_id": place.ID,
			},
		})
		if err != nil {
			return err
		}
		total = entry.Balance
		return nil
	})
	if dao.IsNotFound(err) {
		return nil, response.NotFound("User not found")
	}
	if err != nil {
		return nil, internalError("place redeem", err, zap.Uint64("user_id", userID), zap.Uint64("place_id", placeID))
	}

	return &types.RedeemPlaceResp{
		PointsAwarded: place.RedemptionPointsCost,
		TotalPoints:   total,
	}, nil
}

func placeDetail(p *models.Place) types.PlaceDetail {
	return types.PlaceDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Coordinates: p.Point().Pair(),
		Redemption: types.PlaceRedemption{
			Eligible:   p.RedemptionEligible,
			PointsCost: p.RedemptionPointsCost,
		},
	}
}

func (s *PlaceService) GetPlace(ctx context.Context, placeID uint64) (*types.PlaceDetail, error) {
	place, err := s.PlaceDAO.FindById(ctx, placeID)
	if dao.IsNotFound(err) {
		return nil, response.NotFound("Place not found")
	}
	if err != nil {
		return nil, internalError("get place", err, zap.Uint64("place_id", placeID))
	}
	detail := placeDetail(place)
	return &detail, nil
}

// Nearby 先按经纬度矩形粗筛，再用球面距离精确过滤并排序
func (s *PlaceService) Nearby(ctx context.Context, req *types.NearbyReq) ([]types.PlaceDetail, error) {
	if req.Lng == nil || req.Lat == nil {
		return nil, response.Validation("Invalid coordinates")
	}
	origin := geo.Point{Lng: *req.Lng, Lat: *req.Lat}
	if !origin.Valid() {
		return nil, response.Validation("Invalid coordinates")
	}
	radius := req.Radius
	if radius <= 0 {
		radius = 1000
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	dLat := radius / geo.EarthRadius * 180 / math.Pi
	dLng := 180.0
	if cos := math.Cos(origin.Lat * math.Pi / 180); cos > 1e-6 {
		dLng = math.Min(dLat/cos, 180)
	}
	// 粗筛结果放宽，避免矩形内点过多时截断掉近处的点
	candidates, err := s.PlaceDAO.ListInBox(ctx,
		origin.Lng-dLng, origin.Lng+dLng,
		origin.Lat-dLat, origin.Lat+dLat,
		limit*10,
	)
	if err != nil {
		return nil, internalError("nearby places", err)
	}

	type hit struct {
		place    *models.Place
		distance float64
	}
	hits := make([]hit, 0, len(candidates))
	for i := range candidates {
		d := geo.Distance(origin, candidates[i].Point())
		if d <= radius {
			hits = append(hits, hit{place: &candidates[i], distance: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })
	if len(hits) > limit {
		hits = hits[:limit]
	}

	resp := make([]types.PlaceDetail, 0, len(hits))
	for _, h := range hits {
		detail := placeDetail(h.place)
		d := int64(math.Round(h.distance))
		detail.Distance = &d
		resp = append(resp, detail)
	}
	return resp, nil
}

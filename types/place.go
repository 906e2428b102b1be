package types

type PlaceRedemption struct {
	Eligible   bool  `json:"eligible"`
	PointsCost int64 `json:"pointsCost"`
}

type PlaceDetail struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Coordinates []float64       `json:"coordinates"` // [longitude, latitude]
	Redemption  PlaceRedemption `json:"redemption"`
	Distance    *int64          `json:"distance,omitempty"`
}

type NearbyReq struct {
	Lng    *float64 `form:"lng" binding:"required"`
	Lat    *float64 `form:"lat" binding:"required"`
	Radius float64  `form:"radius,default=1000" binding:"omitempty,gt=0,lte=50000"`
	Limit  int      `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

type RedeemPlaceResp struct {
	PointsAwarded int64 `json:"pointsAwarded"`
	TotalPoints   int64 `json:"totalPoints"`
}

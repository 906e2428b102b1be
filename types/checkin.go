package types

import "time"

type CheckinReq struct {
	PlaceID     uint64    `json:"placeId" binding:"required"`
	Coordinates []float64 `json:"coordinates" binding:"required,len=2"` // [longitude, latitude]
}

type CheckinPlace struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Distance int64  `json:"distance"` // 米，四舍五入
}

type CheckinPoints struct {
	Awarded int64 `json:"awarded"`
	Total   int64 `json:"total"`
}

type CheckinResp struct {
	CheckinID string        `json:"checkinId"`
	Place     CheckinPlace  `json:"place"`
	Points    CheckinPoints `json:"points"`
	Timestamp time.Time     `json:"timestamp"`
}

type CheckinItem struct {
	CheckinID   string    `json:"checkinId"`
	PlaceID     uint64    `json:"placeId"`
	Coordinates []float64 `json:"coordinates"`
	Distance    int64     `json:"distance"`
	Timestamp   time.Time `json:"timestamp"`
}

type ListCheckinsReq struct {
	Cursor int64 `form:"cursor"`
	Limit  int   `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type ListCheckinsResp struct {
	Checkins   []CheckinItem `json:"checkins"`
	NextCursor string        `json:"nextCursor"`
	HasMore    bool          `json:"hasMore"`
}

package types

import "time"

// PointRecord 每一条流水的细节
type PointRecord struct {
	ID          uint64 `json:"id"`
	Amount      int64  `json:"amount"`      // 变动数值（如 +10, -50）
	Balance     int64  `json:"balance"`     // 变动后余额
	Description string `json:"description"` // 变动原因
	OrderType   string `json:"order_type"`  // INCOME / EXPENSE
	ChangeType  int    `json:"change_type"`
	CreatedAt   string `json:"created_at"`
}

// ListPointsRecord 流水列表包装
type ListPointsRecord struct {
	Records    []PointRecord `json:"records"`
	NextCursor uint64        `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

// PointsAccount 账户概览统计
type PointsAccount struct {
	Balance     int64 `json:"balance"`
	TotalEarned int64 `json:"total_earned"`
	TotalUsed   int64 `json:"total_used"`
}

type ListPointRecordsReq struct {
	Action string `form:"action" binding:"omitempty,oneof=all income expense"`
	Cursor uint64 `form:"cursor"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type PointStatsReq struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

type PointStats struct {
	Sum   int64      `json:"sum"`
	Count int64      `json:"count"`
	First *time.Time `json:"first"`
	Last  *time.Time `json:"last"`
}

// Reconciliation 余额与流水合计对账结果
type Reconciliation struct {
	UserID    uint64 `json:"user_id"`
	Balance   int64  `json:"balance"`
	LedgerSum int64  `json:"ledger_sum"`
	Drift     int64  `json:"drift"`
}

func (r Reconciliation) Balanced() bool {
	return r.Drift == 0
}

// LedgerEvent 已提交的积分流水，投递到 MQ
type LedgerEvent struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	Amount     int64     `json:"amount"`
	Balance    int64     `json:"balance"`
	ChangeType int       `json:"change_type"`
	SourceID   string    `json:"source_id"`
	Remark     string    `json:"remark"`
	CreatedAt  time.Time `json:"created_at"`
}

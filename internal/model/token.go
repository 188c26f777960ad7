package model

import (
	"time"
)

// Token 募资代币模型
type Token struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" binding:"required"`
	Ticker      string `json:"ticker" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`

	// 外部链接
	Website  string `json:"website"`
	Twitter  string `json:"twitter"`
	Telegram string `json:"telegram"`

	// 募资信息
	TargetAmount  float64  `json:"target_amount"`
	PledgedAmount float64  `json:"pledged_amount"`
	Pledges       []Pledge `json:"pledges"`

	// 社区信息
	UpvoteCount int       `json:"upvote_count"`
	Upvoters    []string  `json:"upvoters"`
	Comments    []Comment `json:"comments"`

	// 状态：migrated 一旦为 true 永不回退
	Migrated  bool  `json:"migrated"`
	ViewCount int64 `json:"view_count"`
}

// HasUpvoted 检查钱包是否已经点过赞
func (t *Token) HasUpvoted(walletAddress string) bool {
	for _, w := range t.Upvoters {
		if w == walletAddress {
			return true
		}
	}
	return false
}

// Clone 深拷贝代币。返回给调用方的记录不得与账本内部切片共享底层数组，
// 否则后续的退款原地移位会改写已经交出去的记录。
func (t *Token) Clone() *Token {
	out := *t
	out.Pledges = make([]Pledge, len(t.Pledges))
	copy(out.Pledges, t.Pledges)
	out.Upvoters = make([]string, len(t.Upvoters))
	copy(out.Upvoters, t.Upvoters)
	out.Comments = CloneComments(t.Comments)
	return &out
}

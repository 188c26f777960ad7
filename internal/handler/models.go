package handler

import (
	"time"

	"github.com/blues/tfs/internal/model"
)

// 请求模型

// CreateTokenRequest 创建代币请求
type CreateTokenRequest struct {
	Title        string  `json:"title" binding:"required"`
	Ticker       string  `json:"ticker" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	ImageURL     string  `json:"imageUrl" binding:"required"`
	Website      string  `json:"website"`
	Twitter      string  `json:"twitter"`
	Telegram     string  `json:"telegram"`
	TargetAmount float64 `json:"targetAmount"`
}

// WalletRequest 钱包操作请求（点赞、退款）
type WalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// CommitRequest 认购请求
type CommitRequest struct {
	WalletAddress string  `json:"walletAddress" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
}

// CommentRequest 评论请求
type CommentRequest struct {
	Author string `json:"author" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// CreateAgentRequest 创建代理请求
type CreateAgentRequest struct {
	Name        string `json:"name" binding:"required"`
	Personality string `json:"personality"`
	TokenId     string `json:"tokenId"`
}

// 响应模型

// TokenResponse 代币响应模型
type TokenResponse struct {
	Id            string    `json:"id"`
	Title         string    `json:"title"`
	Ticker        string    `json:"ticker"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	Website       string    `json:"website"`
	Twitter       string    `json:"twitter"`
	Telegram      string    `json:"telegram"`
	TargetAmount  float64   `json:"targetAmount"`
	PledgedAmount float64   `json:"pledgedAmount"`
	PledgeCount   int       `json:"pledgeCount"`
	UpvoteCount   int       `json:"upvoteCount"`
	CommentCount  int       `json:"commentCount"`
	Migrated      bool      `json:"migrated"`
	ViewCount     int64     `json:"viewCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TokenDetailResponse 代币详情响应模型
type TokenDetailResponse struct {
	TokenResponse
	Pledges  []model.Pledge  `json:"pledges"`
	Comments []model.Comment `json:"comments"`
}

// RefundResponse 退款响应模型
type RefundResponse struct {
	Token          TokenResponse `json:"token"`
	RefundedAmount float64       `json:"refundedAmount"`
	Fee            float64       `json:"fee"`
}

// AgentResponse 代理响应模型
type AgentResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Personality string    `json:"personality"`
	TokenId     string    `json:"tokenId"`
	Active      bool      `json:"active"`
	LogCount    int       `json:"logCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// 转换函数

// ToTokenResponse 将代币模型转换为响应模型
func ToTokenResponse(token *model.Token) TokenResponse {
	return TokenResponse{
		Id:            token.Id,
		Title:         token.Title,
		Ticker:        token.Ticker,
		Description:   token.Description,
		ImageURL:      token.ImageURL,
		Website:       token.Website,
		Twitter:       token.Twitter,
		Telegram:      token.Telegram,
		TargetAmount:  token.TargetAmount,
		PledgedAmount: token.PledgedAmount,
		PledgeCount:   len(token.Pledges),
		UpvoteCount:   token.UpvoteCount,
		CommentCount:  len(token.Comments),
		Migrated:      token.Migrated,
		ViewCount:     token.ViewCount,
		CreatedAt:     token.CreatedAt,
		UpdatedAt:     token.UpdatedAt,
	}
}

// ToTokenResponseList 将代币模型列表转换为响应模型列表
func ToTokenResponseList(tokens []*model.Token) []TokenResponse {
	result := make([]TokenResponse, len(tokens))
	for i, token := range tokens {
		result[i] = ToTokenResponse(token)
	}
	return result
}

// ToTokenDetailResponse 将代币模型转换为详情响应模型
func ToTokenDetailResponse(token *model.Token) TokenDetailResponse {
	return TokenDetailResponse{
		TokenResponse: ToTokenResponse(token),
		Pledges:       token.Pledges,
		Comments:      token.Comments,
	}
}

// ToAgentResponse 将代理模型转换为响应模型
func ToAgentResponse(agent *model.Agent) AgentResponse {
	return AgentResponse{
		Id:          agent.Id,
		Name:        agent.Name,
		Personality: agent.Personality,
		TokenId:     agent.TokenId,
		Active:      agent.Active,
		LogCount:    len(agent.Logs),
		CreatedAt:   agent.CreatedAt,
	}
}

// ToAgentResponseList 将代理模型列表转换为响应模型列表
func ToAgentResponseList(agents []*model.Agent) []AgentResponse {
	result := make([]AgentResponse, len(agents))
	for i, agent := range agents {
		result[i] = ToAgentResponse(agent)
	}
	return result
}

package logic

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blues/tfs/internal/model"
	"github.com/blues/tfs/internal/store"
	"github.com/google/uuid"
)

const (
	// DefaultTargetAmount 默认募资目标
	DefaultTargetAmount = 20.0
	// DefaultTrendingLimit 热门榜默认条数
	DefaultTrendingLimit = 5
)

// TokenLogic 代币业务逻辑
type TokenLogic struct {
	store *store.Store
}

// NewTokenLogic 创建代币业务逻辑
func NewTokenLogic(st *store.Store) *TokenLogic {
	return &TokenLogic{store: st}
}

// CreateToken 创建代币
func (l *TokenLogic) CreateToken(token *model.Token) error {
	// 验证代币数据
	if err := l.validateToken(token); err != nil {
		return err
	}

	return l.store.Update(func(snapshot *model.Snapshot) error {
		// 代币符号大小写不敏感唯一
		for _, t := range snapshot.Tokens {
			if strings.EqualFold(t.Ticker, token.Ticker) {
				return ErrDuplicateTicker
			}
		}

		// 设置默认值
		now := time.Now()
		token.Id = uuid.NewString()
		token.CreatedAt = now
		token.UpdatedAt = now
		if token.TargetAmount <= 0 {
			token.TargetAmount = DefaultTargetAmount
		}
		token.PledgedAmount = 0
		token.Pledges = []model.Pledge{}
		token.UpvoteCount = 0
		token.Upvoters = []string{}
		token.Comments = []model.Comment{}
		token.Migrated = false
		token.ViewCount = 0

		// 快照持有自己的副本，调用方的指针不进入账本
		snapshot.Tokens = append(snapshot.Tokens, token.Clone())
		return nil
	})
}

// GetTokens 获取代币列表
func (l *TokenLogic) GetTokens() []*model.Token {
	var tokens []*model.Token
	l.store.View(func(snapshot *model.Snapshot) {
		tokens = make([]*model.Token, 0, len(snapshot.Tokens))
		for _, t := range snapshot.Tokens {
			tokens = append(tokens, t.Clone())
		}
	})
	return tokens
}

// GetToken 获取代币详情并递增浏览计数
func (l *TokenLogic) GetToken(id string) (*model.Token, error) {
	var out *model.Token
	err := l.store.Update(func(snapshot *model.Snapshot) error {
		token := snapshot.FindToken(id)
		if token == nil {
			return ErrNotFound
		}
		token.ViewCount++
		out = token.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Upvote 点赞，每个钱包对同一代币至多一次
func (l *TokenLogic) Upvote(id, walletAddress string) (*model.Token, error) {
	if walletAddress == "" {
		return nil, fmt.Errorf("%w: 钱包地址不能为空", ErrInvalidInput)
	}

	var out *model.Token
	err := l.store.Update(func(snapshot *model.Snapshot) error {
		token := snapshot.FindToken(id)
		if token == nil {
			return ErrNotFound
		}
		if token.HasUpvoted(walletAddress) {
			return ErrAlreadyUpvoted
		}

		token.Upvoters = append(token.Upvoters, walletAddress)
		token.UpvoteCount++
		token.UpdatedAt = time.Now()
		out = token.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddComment 添加顶级评论
func (l *TokenLogic) AddComment(id, author, text string) (*model.Comment, error) {
	if author == "" {
		return nil, fmt.Errorf("%w: 评论作者不能为空", ErrInvalidInput)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: 评论内容不能为空", ErrInvalidInput)
	}

	var out model.Comment
	err := l.store.Update(func(snapshot *model.Snapshot) error {
		token := snapshot.FindToken(id)
		if token == nil {
			return ErrNotFound
		}

		comment := model.Comment{
			Id:        uuid.NewString(),
			Author:    author,
			Text:      text,
			CreatedAt: time.Now(),
			Replies:   []model.Comment{},
		}
		token.Comments = append(token.Comments, comment)
		token.UpdatedAt = comment.CreatedAt
		out = comment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetComments 获取代币评论列表
func (l *TokenLogic) GetComments(id string) ([]model.Comment, error) {
	var comments []model.Comment
	var found bool
	l.store.View(func(snapshot *model.Snapshot) {
		token := snapshot.FindToken(id)
		if token == nil {
			return
		}
		found = true
		comments = model.CloneComments(token.Comments)
	})
	if !found {
		return nil, ErrNotFound
	}
	return comments, nil
}

// GetTrending 按点赞数降序返回前limit个代币，点赞数相同时保持创建顺序
func (l *TokenLogic) GetTrending(limit int) []*model.Token {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	tokens := l.GetTokens()
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].UpvoteCount > tokens[j].UpvoteCount
	})

	if len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return tokens
}

// GetAllTokenStats 获取全局统计信息
func (l *TokenLogic) GetAllTokenStats() map[string]interface{} {
	var totalTokens, migratedTokens, totalUpvotes int
	var totalPledged float64

	l.store.View(func(snapshot *model.Snapshot) {
		totalTokens = len(snapshot.Tokens)
		for _, t := range snapshot.Tokens {
			if t.Migrated {
				migratedTokens++
			}
			totalUpvotes += t.UpvoteCount
			totalPledged += t.PledgedAmount
		}
	})

	return map[string]interface{}{
		"totalTokens":    totalTokens,
		"migratedTokens": migratedTokens,
		"totalPledged":   totalPledged,
		"totalUpvotes":   totalUpvotes,
	}
}

// validateToken 验证代币数据
func (l *TokenLogic) validateToken(token *model.Token) error {
	if token.Title == "" {
		return fmt.Errorf("%w: 标题不能为空", ErrInvalidInput)
	}
	if token.Ticker == "" {
		return fmt.Errorf("%w: 代币符号不能为空", ErrInvalidInput)
	}
	if token.Description == "" {
		return fmt.Errorf("%w: 描述不能为空", ErrInvalidInput)
	}
	if token.ImageURL == "" {
		return fmt.Errorf("%w: 图片不能为空", ErrInvalidInput)
	}
	return nil
}

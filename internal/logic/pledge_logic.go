package logic

import (
	"fmt"
	"time"

	"github.com/blues/tfs/internal/model"
	"github.com/blues/tfs/internal/store"
)

// RefundFeeRate 退款手续费率，引擎固定常量
const RefundFeeRate = 0.01

// PledgeLogic 认购业务逻辑
type PledgeLogic struct {
	store *store.Store
}

// NewPledgeLogic 创建认购业务逻辑
func NewPledgeLogic(st *store.Store) *PledgeLogic {
	return &PledgeLogic{store: st}
}

// Commit 认购。累计金额达到目标时在同一次更新内完成 migrated 状态切换，
// 调用方不会观察到已达标但未迁移的中间态。
// 同一钱包重复认购不做拦截，允许持有多笔在途认购。
func (l *PledgeLogic) Commit(id, walletAddress string, amount float64) (*model.Token, error) {
	if walletAddress == "" {
		return nil, fmt.Errorf("%w: 钱包地址不能为空", ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: 认购金额必须大于0", ErrInvalidInput)
	}

	var out *model.Token
	err := l.store.Update(func(snapshot *model.Snapshot) error {
		token := snapshot.FindToken(id)
		if token == nil {
			return ErrNotFound
		}
		if token.Migrated || token.PledgedAmount >= token.TargetAmount {
			return ErrAlreadyFunded
		}

		now := time.Now()
		token.Pledges = append(token.Pledges, model.Pledge{
			WalletAddress: walletAddress,
			Amount:        amount,
			CreatedAt:     now,
		})
		token.PledgedAmount += amount
		if token.PledgedAmount >= token.TargetAmount {
			token.Migrated = true
		}
		token.UpdatedAt = now

		out = token.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Refund 退款。移除该钱包第一笔在途认购，按固定费率收取手续费。
// 返回更新后的代币、实退金额和手续费。
func (l *PledgeLogic) Refund(id, walletAddress string) (*model.Token, float64, float64, error) {
	if walletAddress == "" {
		return nil, 0, 0, fmt.Errorf("%w: 钱包地址不能为空", ErrInvalidInput)
	}

	var out *model.Token
	var refunded, fee float64
	err := l.store.Update(func(snapshot *model.Snapshot) error {
		token := snapshot.FindToken(id)
		if token == nil {
			return ErrNotFound
		}
		if token.Migrated || token.PledgedAmount >= token.TargetAmount {
			return ErrAlreadyFunded
		}

		idx := -1
		for i, p := range token.Pledges {
			if p.WalletAddress == walletAddress {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrNoActivePledge
		}

		amount := token.Pledges[idx].Amount
		token.Pledges = append(token.Pledges[:idx], token.Pledges[idx+1:]...)
		token.PledgedAmount -= amount
		if token.PledgedAmount < 0 {
			token.PledgedAmount = 0
		}
		token.UpdatedAt = time.Now()

		fee = amount * RefundFeeRate
		refunded = amount - fee

		out = token.Clone()
		return nil
	})
	if err != nil {
		return nil, 0, 0, err
	}
	return out, refunded, fee, nil
}

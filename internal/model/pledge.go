package model

import (
	"time"
)

// Pledge 认购记录
type Pledge struct {
	WalletAddress string    `json:"wallet_address"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

package model

import (
	"time"
)

// Agent AI代理模型，只做周期性日志模拟，不参与账本逻辑
type Agent struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name        string `json:"name"`
	Personality string `json:"personality"`
	TokenId     string `json:"token_id"`
	Active      bool   `json:"active"`

	Logs []AgentLog `json:"logs"`
}

// AgentLog 代理日志条目
type AgentLog struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone 深拷贝代理，日志切片不与快照共享底层数组
func (a *Agent) Clone() *Agent {
	out := *a
	out.Logs = make([]AgentLog, len(a.Logs))
	copy(out.Logs, a.Logs)
	return &out
}

package store

import (
	"errors"
	"fmt"

	"github.com/blues/tfs/internal/config"
	"github.com/blues/tfs/internal/model"
)

// ErrPersistence 快照持久化失败
var ErrPersistence = errors.New("快照持久化失败")

// Gateway 快照持久化网关，负责全量文档的读写
type Gateway interface {
	// Load 加载快照，不存在时返回空快照
	Load() (*model.Snapshot, error)
	// Save 写入全量快照
	Save(snapshot *model.Snapshot) error
}

// NewGateway 根据配置创建快照网关
func NewGateway(cfg *config.Config) (Gateway, error) {
	switch cfg.Store.Driver {
	case "file":
		return NewFileGateway(cfg.Store.Path), nil
	case "sqlite", "postgres":
		return NewGormGateway(cfg)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

package store

import (
	"sync"

	"github.com/blues/tfs/internal/logger"
	"github.com/blues/tfs/internal/model"
)

// Store 引擎持有的内存账本，所有变更串行化并在变更后写全量快照。
// 单把全局锁同时串行化内存变更和快照写入，避免并发写丢失更新。
type Store struct {
	mu       sync.Mutex
	gateway  Gateway
	strict   bool
	snapshot *model.Snapshot
}

// New 创建账本存储
func New(gateway Gateway, strict bool) *Store {
	return &Store{
		gateway:  gateway,
		strict:   strict,
		snapshot: model.NewSnapshot(),
	}
}

// Init 从网关加载快照
func (s *Store) Init() error {
	snapshot, err := s.gateway.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	logger.Info("Snapshot loaded: %d tokens, %d agents",
		len(snapshot.Tokens), len(snapshot.Agents))
	return nil
}

// Update 执行一次变更并写快照。fn 返回错误时内存状态不落盘。
// 快照写入失败默认只记录日志（内存变更保留），strict 模式下向调用方返回
// ErrPersistence，同样不回滚内存变更。
func (s *Store) Update(fn func(snapshot *model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.snapshot); err != nil {
		return err
	}

	if err := s.gateway.Save(s.snapshot); err != nil {
		logger.Error("Failed to persist snapshot: %v", err)
		if s.strict {
			return ErrPersistence
		}
	}

	return nil
}

// View 执行一次只读访问。fn 不得保留对快照内部数据的引用。
func (s *Store) View(fn func(snapshot *model.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.snapshot)
}

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blues/tfs/internal/model"
)

// FileGateway 基于本地JSON文件的快照网关
type FileGateway struct {
	path string
}

// NewFileGateway 创建文件快照网关
func NewFileGateway(path string) *FileGateway {
	return &FileGateway{path: path}
}

// Load 加载快照文件，文件不存在时返回空快照
func (g *FileGateway) Load() (*model.Snapshot, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	snapshot := model.NewSnapshot()
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file: %w", err)
	}

	return snapshot, nil
}

// Save 写入快照文件，先写临时文件再重命名保证原子性
func (g *FileGateway) Save(snapshot *model.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp snapshot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp snapshot file: %w", err)
	}

	if err := os.Rename(tmp.Name(), g.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}

	return nil
}

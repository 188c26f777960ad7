package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blues/tfs/internal/config"
	"github.com/blues/tfs/internal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// 快照文档固定占用单行
const snapshotRowId = 1

// SnapshotModel 快照文档表
type SnapshotModel struct {
	Id        int64     `gorm:"primaryKey"`
	Document  []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName 自定义表名
func (SnapshotModel) TableName() string {
	return "snapshot"
}

// GormGateway 基于数据库单行文档表的快照网关
type GormGateway struct {
	db *gorm.DB
}

// NewGormGateway 创建数据库快照网关，驱动由配置决定
func NewGormGateway(cfg *config.Config) (*GormGateway, error) {
	var dialector gorm.Dialector
	switch cfg.Store.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Store.Path)
	case "postgres":
		dbCfg := cfg.Database
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dbCfg.Host, dbCfg.Port, dbCfg.User, dbCfg.Password, dbCfg.DBName, dbCfg.SSLMode)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Store.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent), // 禁用 GORM 的默认日志输出
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true, // 禁用复数表名
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 自动迁移
	if err := db.AutoMigrate(&SnapshotModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &GormGateway{db: db}, nil
}

// Load 读取文档行，行不存在时返回空快照
func (g *GormGateway) Load() (*model.Snapshot, error) {
	var row SnapshotModel
	if err := g.db.First(&row, snapshotRowId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("failed to load snapshot row: %w", err)
	}

	snapshot := model.NewSnapshot()
	if err := json.Unmarshal(row.Document, snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot document: %w", err)
	}

	return snapshot, nil
}

// Save 序列化快照并覆盖文档行
func (g *GormGateway) Save(snapshot *model.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	row := SnapshotModel{
		Id:        snapshotRowId,
		Document:  data,
		UpdatedAt: time.Now(),
	}

	err = g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot row: %w", err)
	}

	return nil
}

package agent

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/blues/tfs/internal/config"
	"github.com/blues/tfs/internal/logger"
	"github.com/blues/tfs/internal/model"
	"github.com/blues/tfs/internal/store"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

// ErrAgentNotFound 代理不存在
var ErrAgentNotFound = errors.New("代理不存在")

// errAgentInactive 代理已停止，心跳跳过且不触发快照写入
var errAgentInactive = errors.New("代理未激活")

// Manager 代理任务管理器。每个激活的代理持有一个独立的周期任务，
// 任务只向该代理自己的日志追加内容，不触碰账本状态。
type Manager struct {
	scheduler gocron.Scheduler
	pool      *ants.Pool
	store     *store.Store
	config    *config.Config

	mu   sync.Mutex
	jobs map[string]uuid.UUID // agentId -> jobId，停止代理时用于移除任务
}

// NewManager 创建代理任务管理器
func NewManager(st *store.Store, cfg *config.Config) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	pool, err := ants.NewPool(cfg.Agent.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent pool: %w", err)
	}

	return &Manager{
		scheduler: s,
		pool:      pool,
		store:     st,
		config:    cfg,
		jobs:      make(map[string]uuid.UUID),
	}, nil
}

// Start 恢复快照中已激活代理的任务并启动调度器
func (m *Manager) Start() {
	var active []string
	m.store.View(func(snapshot *model.Snapshot) {
		for _, a := range snapshot.Agents {
			if a.Active {
				active = append(active, a.Id)
			}
		}
	})

	for _, id := range active {
		if err := m.registerAgentJob(id); err != nil {
			logger.Error("Failed to register agent job %s: %v", id, err)
		}
	}

	m.scheduler.Start()
	logger.Info("Agent manager started with %d active agents", len(active))
}

// CreateAgent 创建代理并立即注册其周期任务
func (m *Manager) CreateAgent(name, personality, tokenId string) (*model.Agent, error) {
	if name == "" {
		return nil, errors.New("代理名称不能为空")
	}
	if personality == "" {
		personality = "neutral"
	}

	agent := &model.Agent{
		Id:          uuid.NewString(),
		CreatedAt:   time.Now(),
		Name:        name,
		Personality: personality,
		TokenId:     tokenId,
		Active:      true,
		Logs:        []model.AgentLog{},
	}

	err := m.store.Update(func(snapshot *model.Snapshot) error {
		snapshot.Agents = append(snapshot.Agents, agent)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := m.registerAgentJob(agent.Id); err != nil {
		logger.Error("Failed to register agent job %s: %v", agent.Id, err)
	}

	return agent.Clone(), nil
}

// GetAgents 获取代理列表
func (m *Manager) GetAgents() []*model.Agent {
	var agents []*model.Agent
	m.store.View(func(snapshot *model.Snapshot) {
		agents = make([]*model.Agent, 0, len(snapshot.Agents))
		for _, a := range snapshot.Agents {
			agents = append(agents, a.Clone())
		}
	})
	return agents
}

// GetAgentLogs 获取指定代理的日志
func (m *Manager) GetAgentLogs(id string) ([]model.AgentLog, error) {
	var logs []model.AgentLog
	var found bool
	m.store.View(func(snapshot *model.Snapshot) {
		agent := snapshot.FindAgent(id)
		if agent == nil {
			return
		}
		found = true
		logs = make([]model.AgentLog, len(agent.Logs))
		copy(logs, agent.Logs)
	})
	if !found {
		return nil, ErrAgentNotFound
	}
	return logs, nil
}

// StopAgent 停止代理：移除周期任务并标记为非激活
func (m *Manager) StopAgent(id string) error {
	err := m.store.Update(func(snapshot *model.Snapshot) error {
		agent := snapshot.FindAgent(id)
		if agent == nil {
			return ErrAgentNotFound
		}
		agent.Active = false
		return nil
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	jobId, ok := m.jobs[id]
	if ok {
		delete(m.jobs, id)
	}
	m.mu.Unlock()

	if ok {
		if err := m.scheduler.RemoveJob(jobId); err != nil {
			logger.Error("Failed to remove agent job %s: %v", id, err)
		}
	}

	logger.Info("Agent %s stopped", id)
	return nil
}

// Stop 停止调度器和协程池
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown agent scheduler: %v", err)
	}
	m.pool.Release()
	logger.Info("Agent manager stopped")
}

// registerAgentJob 为代理注册周期任务
func (m *Manager) registerAgentJob(agentId string) error {
	interval := time.Duration(m.config.Agent.Interval) * time.Second

	job, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			// 任务体提交到协程池执行，限制并发代理数
			if err := m.pool.Submit(func() { m.tick(agentId) }); err != nil {
				logger.Error("Failed to submit agent tick %s: %v", agentId, err)
			}
		}),
		gocron.WithName("agent_"+agentId),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.jobs[agentId] = job.ID()
	m.mu.Unlock()

	return nil
}

// tick 执行一次代理心跳，向该代理自己的日志追加一条消息
func (m *Manager) tick(agentId string) {
	err := m.store.Update(func(snapshot *model.Snapshot) error {
		agent := snapshot.FindAgent(agentId)
		if agent == nil {
			return ErrAgentNotFound
		}
		if !agent.Active {
			// 回调返回错误时 Update 不落盘，空转心跳不产生快照写入
			return errAgentInactive
		}

		agent.Logs = append(agent.Logs, model.AgentLog{
			Message:   pickMessage(agent.Personality),
			CreatedAt: time.Now(),
		})
		return nil
	})
	if err != nil && !errors.Is(err, errAgentInactive) {
		logger.Error("Agent tick failed for %s: %v", agentId, err)
	}
}

// 各性格的固定消息池
var agentMessages = map[string][]string{
	"bullish": {
		"Momentum is building, watching the pledge flow closely.",
		"Target looks within reach this cycle.",
		"Community upvotes trending up, staying long.",
	},
	"cautious": {
		"Reviewing pledge history before the next move.",
		"Holding position, waiting for clearer signals.",
		"Refund activity noted, reassessing exposure.",
	},
	"neutral": {
		"Scanning campaign activity.",
		"No significant change since last check.",
		"Logging periodic status report.",
	},
}

// pickMessage 按性格随机选取一条消息
func pickMessage(personality string) string {
	messages, ok := agentMessages[personality]
	if !ok {
		messages = agentMessages["neutral"]
	}
	return messages[rand.Intn(len(messages))]
}

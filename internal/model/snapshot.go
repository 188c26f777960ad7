package model

// Snapshot 全量持久化文档，按实体集合分组
type Snapshot struct {
	Tokens []*Token `json:"tokens"`
	Agents []*Agent `json:"agents"`
}

// NewSnapshot 创建空快照
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Tokens: []*Token{},
		Agents: []*Agent{},
	}
}

// FindToken 按ID查找代币
func (s *Snapshot) FindToken(id string) *Token {
	for _, t := range s.Tokens {
		if t.Id == id {
			return t
		}
	}
	return nil
}

// FindAgent 按ID查找代理
func (s *Snapshot) FindAgent(id string) *Agent {
	for _, a := range s.Agents {
		if a.Id == id {
			return a
		}
	}
	return nil
}

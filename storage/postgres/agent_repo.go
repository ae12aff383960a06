package postgres

import (
	"context"

	"gorm.io/gorm"
)

// AgentRepo 封装对 Agent 表的所有操作
type AgentRepo struct {
	db *gorm.DB
}

func NewAgentRepo(db *gorm.DB) *AgentRepo {
	return &AgentRepo{db: db}
}

func (r *AgentRepo) Create(ctx context.Context, agent *Agent) error {
	return r.db.WithContext(ctx).Create(agent).Error
}

func (r *AgentRepo) GetByEmail(ctx context.Context, email string) (*Agent, error) {
	var agent Agent
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&agent).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByToken 鉴权中间件按令牌找人，空令牌直接判未登录
func (r *AgentRepo) GetByToken(ctx context.Context, token string) (*Agent, error) {
	if token == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var agent Agent
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&agent).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// UpdateToken 登录时轮换令牌
func (r *AgentRepo) UpdateToken(ctx context.Context, agentID int64, token string) error {
	return r.db.WithContext(ctx).
		Model(&Agent{}).
		Where("id = ?", agentID).
		Update("token", token).Error
}

package postgres

import (
	"context"

	"gorm.io/gorm"
)

// ClientRepo 封装对 Client 表的所有操作
type ClientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

func (r *ClientRepo) Create(ctx context.Context, client *Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientRepo) GetByID(ctx context.Context, agentID, id int64) (*Client, error) {
	var client Client
	err := r.db.WithContext(ctx).
		Where("id = ? AND agent_id = ?", id, agentID).
		First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepo) ListByAgent(ctx context.Context, agentID int64) ([]Client, error) {
	var clients []Client
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("full_name ASC, id ASC").
		Find(&clients).Error
	return clients, err
}

func (r *ClientRepo) Delete(ctx context.Context, agentID, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND agent_id = ?", id, agentID).
		Delete(&Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"policy-portal/types"
)

// PolicyRepo 封装对 Policy 表的所有操作
type PolicyRepo struct {
	db *gorm.DB
}

func NewPolicyRepo(db *gorm.DB) *PolicyRepo {
	return &PolicyRepo{db: db}
}

// Create 创建新保单记录
func (r *PolicyRepo) Create(ctx context.Context, policy *Policy) error {
	// WithContext 允许你在超时的时候取消数据库操作
	return r.db.WithContext(ctx).Create(policy).Error
}

// GetByID 按代理人范围查单条保单，查不到返回 gorm.ErrRecordNotFound
func (r *PolicyRepo) GetByID(ctx context.Context, agentID, id int64) (*Policy, error) {
	var policy Policy
	err := r.db.WithContext(ctx).
		Where("id = ? AND agent_id = ?", id, agentID).
		First(&policy).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// ListByAgent 取代理人的完整保单快照，按到期日升序。
// 过滤和汇总都在内存里做（见 logic/policyfilter），这里只负责取数和排序。
func (r *PolicyRepo) ListByAgent(ctx context.Context, agentID int64) ([]Policy, error) {
	var policies []Policy
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("expiry_date ASC, id ASC").
		Find(&policies).Error
	return policies, err
}

func (r *PolicyRepo) Delete(ctx context.Context, agentID, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND agent_id = ?", id, agentID).
		Delete(&Policy{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus 权威状态流转（续保/退保等），核心过滤逻辑自己从不改状态
func (r *PolicyRepo) UpdateStatus(ctx context.Context, agentID, id int64, status types.PolicyStatus) error {
	result := r.db.WithContext(ctx).
		Model(&Policy{}).
		Where("id = ? AND agent_id = ?", id, agentID).
		Update("policy_status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExpirePolicies 定时任务批量把过了到期日的 ACTIVE 保单翻成 EXPIRED
func (r *PolicyRepo) ExpirePolicies(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Policy{}).
		Where("policy_status = ? AND expiry_date < ?", string(types.StatusActive), now).
		Update("policy_status", string(types.StatusExpired))
	return result.RowsAffected, result.Error
}

// CountExpiringWithin 统计 windowDays 天内到期的 ACTIVE 保单数，定时任务打日志用
func (r *PolicyRepo) CountExpiringWithin(ctx context.Context, now time.Time, windowDays int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Policy{}).
		Where("policy_status = ? AND expiry_date >= ? AND expiry_date <= ?",
			string(types.StatusActive), now, now.AddDate(0, 0, windowDays)).
		Count(&count).Error
	return count, err
}

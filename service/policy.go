package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"policy-portal/logic/policyfilter"
	"policy-portal/logic/renewal"
	"policy-portal/storage/postgres"
	"policy-portal/types"
)

// PolicyService 保单业务层：取数交给 repo，分类/过滤交给 logic 里的纯函数。
// now 由外部注入，核心逻辑永远显式传 today，方便测试。
type PolicyService struct {
	policyRepo *postgres.PolicyRepo
	clientRepo *postgres.ClientRepo
	now        func() time.Time
}

func NewPolicyService(policyRepo *postgres.PolicyRepo, clientRepo *postgres.ClientRepo, now func() time.Time) *PolicyService {
	if now == nil {
		now = time.Now
	}
	return &PolicyService{policyRepo: policyRepo, clientRepo: clientRepo, now: now}
}

// PolicyRow 列表页的一行：保单 + 派生的续保信息。
// StatusLabel 是给前端的行内标签：ACTIVE 但日期已过期的行也显示 "Expired"。
type PolicyRow struct {
	types.Policy
	DaysUntilExpiry int    `json:"days_until_expiry"`
	RenewalState    string `json:"renewal_state"`
	UrgencyTier     string `json:"urgency_tier"`
	StatusLabel     string `json:"status_label"`
}

// PolicyListResult 过滤后的可见行 + 全集汇总（汇总不受过滤影响）
type PolicyListResult struct {
	Rows    []PolicyRow   `json:"rows"`
	Summary types.Summary `json:"summary"`
}

// CreatePolicyInput 建单入参：保单字段 + 客户字段。
// ClientID > 0 时引用已有客户并快照其字段，否则用内联字段新建客户。
type CreatePolicyInput struct {
	PolicyNumber     string  `json:"policy_number" binding:"required"`
	PolicyType       string  `json:"policy_type" binding:"required"`
	StartDate        string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	ExpiryDate       string  `json:"expiry_date" binding:"required"`
	Premium          float64 `json:"premium"`
	PremiumFrequency string  `json:"premium_frequency"`
	Description      string  `json:"policy_description"`

	ClientID       int64  `json:"client_id"`
	ClientFullName string `json:"client_full_name"`
	ClientEmail    string `json:"client_email"`
	ClientPhone    string `json:"client_phone_number"`
	ClientAddress  string `json:"client_address"`
}

func (s *PolicyService) CreatePolicy(ctx context.Context, agentID int64, in CreatePolicyInput) (*PolicyRow, error) {
	policyType := types.PolicyType(strings.ToUpper(strings.TrimSpace(in.PolicyType)))
	if !policyType.Valid() {
		return nil, fmt.Errorf("无效的保单类型: %s", in.PolicyType)
	}

	freq := types.PremiumFrequency(strings.ToUpper(strings.TrimSpace(in.PremiumFrequency)))
	if in.PremiumFrequency == "" {
		freq = types.FreqYearly
	}
	if !freq.Valid() {
		return nil, fmt.Errorf("无效的缴费频率: %s", in.PremiumFrequency)
	}

	if in.Premium < 0 {
		return nil, fmt.Errorf("保费不能为负数")
	}

	startDate, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("无效的起期: %s", in.StartDate)
	}
	expiryDate, err := time.Parse("2006-01-02", in.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("无效的止期: %s", in.ExpiryDate)
	}
	if !expiryDate.After(startDate) {
		return nil, fmt.Errorf("止期必须晚于起期")
	}

	// 客户字段快照
	clientID := in.ClientID
	fullName := strings.TrimSpace(in.ClientFullName)
	email := strings.TrimSpace(in.ClientEmail)
	phone := strings.TrimSpace(in.ClientPhone)
	address := strings.TrimSpace(in.ClientAddress)

	if clientID > 0 {
		client, err := s.clientRepo.GetByID(ctx, agentID, clientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		fullName = client.FullName
		email = client.Email
		phone = client.PhoneNumber
		address = client.Address
	} else {
		if fullName == "" {
			return nil, fmt.Errorf("客户姓名不能为空")
		}
		client := &postgres.Client{
			AgentID:     agentID,
			FullName:    fullName,
			Email:       email,
			PhoneNumber: phone,
			Address:     address,
		}
		if err := s.clientRepo.Create(ctx, client); err != nil {
			return nil, err
		}
		clientID = client.ID
	}

	policy := &postgres.Policy{
		AgentID:          agentID,
		ClientID:         clientID,
		PolicyNumber:     strings.TrimSpace(in.PolicyNumber),
		PolicyType:       string(policyType),
		PolicyStatus:     string(types.StatusActive),
		StartDate:        startDate,
		ExpiryDate:       expiryDate,
		Premium:          in.Premium,
		PremiumFrequency: string(freq),
		Description:      strings.TrimSpace(in.Description),
		ClientFullName:   fullName,
		ClientEmail:      email,
		ClientPhone:      phone,
		ClientAddress:    address,
	}
	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return nil, err
	}

	row := s.decorate(policy.ToView(), s.now())
	return &row, nil
}

// ListPolicies 列表页主入口：完整快照 -> 纯函数过滤 -> 逐行装饰。
// Summary 永远统计未过滤的全集。
func (s *PolicyService) ListPolicies(ctx context.Context, agentID int64, criteria types.FilterCriteria) (*PolicyListResult, error) {
	records, err := s.policyRepo.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	policies := make([]types.Policy, 0, len(records))
	for i := range records {
		policies = append(policies, records[i].ToView())
	}

	today := s.now()
	visible := policyfilter.Apply(policies, criteria, today)

	rows := make([]PolicyRow, 0, len(visible))
	for _, p := range visible {
		rows = append(rows, s.decorate(p, today))
	}

	return &PolicyListResult{
		Rows:    rows,
		Summary: policyfilter.Aggregate(policies, today),
	}, nil
}

// Summary 汇总计数单独暴露，前端 Tab 角标用
func (s *PolicyService) Summary(ctx context.Context, agentID int64) (types.Summary, error) {
	records, err := s.policyRepo.ListByAgent(ctx, agentID)
	if err != nil {
		return types.Summary{}, err
	}
	policies := make([]types.Policy, 0, len(records))
	for i := range records {
		policies = append(policies, records[i].ToView())
	}
	return policyfilter.Aggregate(policies, s.now()), nil
}

func (s *PolicyService) GetPolicy(ctx context.Context, agentID, id int64) (*PolicyRow, error) {
	record, err := s.policyRepo.GetByID(ctx, agentID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	row := s.decorate(record.ToView(), s.now())
	return &row, nil
}

func (s *PolicyService) DeletePolicy(ctx context.Context, agentID, id int64) error {
	err := s.policyRepo.Delete(ctx, agentID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// UpdateStatus 权威状态流转（标记续保/退保），由代理人显式操作触发
func (s *PolicyService) UpdateStatus(ctx context.Context, agentID, id int64, status string) (*PolicyRow, error) {
	st := types.PolicyStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, fmt.Errorf("无效的保单状态: %s", status)
	}
	if err := s.policyRepo.UpdateStatus(ctx, agentID, id, st); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetPolicy(ctx, agentID, id)
}

// decorate 给一行补上派生的续保信息。
// 行内标签和 EXPIRED Tab 故意不是一回事：Tab 看权威状态，
// 标签对日期已过期、状态还没流转的 ACTIVE 行也显示 "Expired"。
func (s *PolicyService) decorate(p types.Policy, today time.Time) PolicyRow {
	cls := renewal.Classify(p, today)

	label := string(p.PolicyStatus)
	if cls.State == renewal.StateExpiredByDate {
		label = string(types.StatusExpired)
	}

	return PolicyRow{
		Policy:          p,
		DaysUntilExpiry: cls.DaysUntilExpiry,
		RenewalState:    string(cls.State),
		UrgencyTier:     string(renewal.TierOf(cls.DaysUntilExpiry)),
		StatusLabel:     label,
	}
}

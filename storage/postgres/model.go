package postgres

import (
	"time"

	"policy-portal/types"
)

// Agent 对应 agents 表，门户的登录主体，保单和客户都挂在代理人名下
type Agent struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	FullName     string `gorm:"column:full_name;type:varchar(255)"`
	// Token 登录后签发的不透明令牌，每次登录轮换
	Token string `gorm:"column:token;type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Agent) TableName() string {
	return "agents"
}

// Client 对应 clients 表
type Client struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	AgentID     int64  `gorm:"column:agent_id;index;not null"`
	FullName    string `gorm:"column:full_name;type:varchar(255);not null;index"`
	Email       string `gorm:"column:email;type:varchar(255)"`
	PhoneNumber string `gorm:"column:phone_number;type:varchar(50)"`
	Address     string `gorm:"column:address;type:varchar(500)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Client) TableName() string {
	return "clients"
}

// Policy 对应 policies 表。
// 客户字段冗余一份快照在保单行里，列表页不用再连表。
type Policy struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	AgentID          int64     `gorm:"column:agent_id;index;not null"`
	ClientID         int64     `gorm:"column:client_id;index"`
	PolicyNumber     string    `gorm:"column:policy_number;type:varchar(100);not null;index"`
	PolicyType       string    `gorm:"column:policy_type;type:varchar(20);index"`
	PolicyStatus     string    `gorm:"column:policy_status;type:varchar(20);default:ACTIVE;index"`
	StartDate        time.Time `gorm:"column:start_date;type:date"`
	ExpiryDate       time.Time `gorm:"column:expiry_date;type:date;index"` // 到期日
	Premium          float64   `gorm:"column:premium;type:decimal(15,2)"`
	PremiumFrequency string    `gorm:"column:premium_frequency;type:varchar(20);default:YEARLY"`
	Description      string    `gorm:"column:description;type:text"`

	ClientFullName string `gorm:"column:client_full_name;type:varchar(255);index"`
	ClientEmail    string `gorm:"column:client_email;type:varchar(255)"`
	ClientPhone    string `gorm:"column:client_phone;type:varchar(50)"`
	ClientAddress  string `gorm:"column:client_address;type:varchar(500)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Policy) TableName() string {
	return "policies"
}

func (p *Policy) IsActive() bool {
	return p.PolicyStatus == string(types.StatusActive)
}

// ToView 转成核心逻辑使用的内存视图
func (p *Policy) ToView() types.Policy {
	return types.Policy{
		ID:               p.ID,
		PolicyNumber:     p.PolicyNumber,
		PolicyType:       types.PolicyType(p.PolicyType),
		PolicyStatus:     types.PolicyStatus(p.PolicyStatus),
		StartDate:        p.StartDate,
		ExpiryDate:       p.ExpiryDate,
		Premium:          p.Premium,
		PremiumFrequency: types.PremiumFrequency(p.PremiumFrequency),
		Description:      p.Description,
		ClientFullName:   p.ClientFullName,
		ClientEmail:      p.ClientEmail,
		ClientPhone:      p.ClientPhone,
		ClientAddress:    p.ClientAddress,
	}
}

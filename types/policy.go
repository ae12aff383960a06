package types

import "time"

// --- 枚举定义 ---

// PolicyStatus 权威状态，由后端写入，核心逻辑只读不改
type PolicyStatus string

const (
	StatusActive    PolicyStatus = "ACTIVE"
	StatusExpired   PolicyStatus = "EXPIRED"
	StatusRenewed   PolicyStatus = "RENEWED"
	StatusCancelled PolicyStatus = "CANCELLED"
)

func (s PolicyStatus) Valid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusRenewed, StatusCancelled:
		return true
	}
	return false
}

type PolicyType string

const (
	TypeLife     PolicyType = "LIFE"
	TypeHealth   PolicyType = "HEALTH"
	TypeVehicle  PolicyType = "VEHICLE"
	TypeHome     PolicyType = "HOME"
	TypeTravel   PolicyType = "TRAVEL"
	TypeBusiness PolicyType = "BUSINESS"
)

func (t PolicyType) Valid() bool {
	switch t {
	case TypeLife, TypeHealth, TypeVehicle, TypeHome, TypeTravel, TypeBusiness:
		return true
	}
	return false
}

type PremiumFrequency string

const (
	FreqMonthly   PremiumFrequency = "MONTHLY"
	FreqQuarterly PremiumFrequency = "QUARTERLY"
	FreqYearly    PremiumFrequency = "YEARLY"
)

func (f PremiumFrequency) Valid() bool {
	switch f {
	case FreqMonthly, FreqQuarterly, FreqYearly:
		return true
	}
	return false
}

// --- 结构体定义 ---

// Policy 保单的内存视图，过滤和分类都在这个切片上进行。
// 客户字段是冗余快照，避免列表页逐条查客户表。
type Policy struct {
	ID               int64            `json:"policy_id"`
	PolicyNumber     string           `json:"policy_number"`
	PolicyType       PolicyType       `json:"policy_type"`
	PolicyStatus     PolicyStatus     `json:"policy_status"`
	StartDate        time.Time        `json:"start_date"`
	ExpiryDate       time.Time        `json:"expiry_date"`
	Premium          float64          `json:"premium"`
	PremiumFrequency PremiumFrequency `json:"premium_frequency"`
	Description      string           `json:"policy_description,omitempty"`

	ClientFullName string `json:"client_full_name"`
	ClientEmail    string `json:"client_email"`
	ClientPhone    string `json:"client_phone_number"`
	ClientAddress  string `json:"client_address,omitempty"`
}

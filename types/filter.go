package types

// StatusBucket 列表页顶部的粗粒度视图选择 (Tab)
type StatusBucket string

const (
	BucketAll      StatusBucket = "ALL"
	BucketActive   StatusBucket = "ACTIVE"
	BucketExpiring StatusBucket = "EXPIRING"
	BucketExpired  StatusBucket = "EXPIRED"
)

// AdvancedFilter 高级筛选，每个字段都可以独立开关。
// 数值/日期范围用 string 接收前端输入，非法值在过滤层视为"无约束"，不报错。
type AdvancedFilter struct {
	PolicyType       string `form:"policy_type" json:"policy_type,omitempty"`
	PremiumFrequency string `form:"premium_frequency" json:"premium_frequency,omitempty"`
	MinPremium       string `form:"min_premium" json:"min_premium,omitempty"`
	MaxPremium       string `form:"max_premium" json:"max_premium,omitempty"`
	ExpiryFrom       string `form:"expiry_from" json:"expiry_from,omitempty"` // YYYY-MM-DD
	ExpiryTo         string `form:"expiry_to" json:"expiry_to,omitempty"`     // YYYY-MM-DD
}

// FilterCriteria 一次过滤请求的完整快照。
// 搜索框每次击键都会产生一个新快照，过滤器是快照上的纯函数。
type FilterCriteria struct {
	StatusBucket StatusBucket `form:"status" json:"status"`
	SearchQuery  string       `form:"q" json:"q"`
	Advanced     AdvancedFilter
}

// Summary 汇总计数，永远基于完整集合，与当前过滤条件无关
type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}

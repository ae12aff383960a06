package types

// PolicyRawData LLM 从保单文本中提取出的原始字段 (弱类型，待清洗)
type PolicyRawData struct {
	PolicyNumber     string      `json:"policy_number" jsonschema:"description=保单号,required"`
	PolicyType       string      `json:"policy_type" jsonschema:"description=保单类型，LIFE/HEALTH/VEHICLE/HOME/TRAVEL/BUSINESS 之一"`
	StartDate        *string     `json:"start_date" jsonschema:"description=保险起期，YYYY-MM-DD格式，没找到返回空字符串"`
	ExpiryDate       *string     `json:"expiry_date" jsonschema:"description=保险止期，YYYY-MM-DD格式，没找到返回空字符串"`
	Premium          interface{} `json:"premium" jsonschema:"description=保费金额，提取纯数字"`
	PremiumFrequency string      `json:"premium_frequency" jsonschema:"description=缴费频率，MONTHLY/QUARTERLY/YEARLY 之一"`
	ClientFullName   string      `json:"client_full_name" jsonschema:"description=投保人姓名"`
	ClientEmail      string      `json:"client_email" jsonschema:"description=投保人邮箱"`
	ClientPhone      string      `json:"client_phone" jsonschema:"description=投保人电话"`
	ClientAddress    string      `json:"client_address" jsonschema:"description=投保人地址"`
	Description      string      `json:"description" jsonschema:"description=保障内容简短摘要"`
	Confidence       float64     `json:"confidence" jsonschema:"description=提取置信度 0到1"`
}

// ExtractResult 返回给前端用于预填建单表单的结果。
// Confidence 低于阈值时 LowConfidence 置真，只提示、不拦截提交。
type ExtractResult struct {
	Success          bool    `json:"success"`
	PolicyNumber     string  `json:"policy_number,omitempty"`
	PolicyType       string  `json:"policy_type,omitempty"`
	StartDate        string  `json:"start_date,omitempty"`
	ExpiryDate       string  `json:"expiry_date,omitempty"`
	Premium          float64 `json:"premium"`
	PremiumFrequency string  `json:"premium_frequency,omitempty"`
	ClientFullName   string  `json:"client_full_name,omitempty"`
	ClientEmail      string  `json:"client_email,omitempty"`
	ClientPhone      string  `json:"client_phone,omitempty"`
	ClientAddress    string  `json:"client_address,omitempty"`
	Description      string  `json:"description,omitempty"`
	Confidence       float64 `json:"confidence"`
	LowConfidence    bool    `json:"low_confidence"`
	Message          string  `json:"message,omitempty"`
}

package vars

import (
	"os"
)

// GetEnv 获取环境变量，如果不存在则返回默认值
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

const (
	// 模型名称
	QWEN3B = "qwen2.5:3b"
	QWEN7B = "qwen2.5:7b"

	// 提取置信度阈值：低于该值时前端需要提示用户人工核对，但不阻止提交
	ConfidenceThreshold = 0.6
)

// 环境变量配置（支持 Docker 部署）
var (
	// OLLAMA
	OLLAMA_PATH = GetEnv("OLLAMA_PATH", "http://localhost:11434")

	// PG
	PGUSER = GetEnv("PGUSER", "root")
	PGPWD  = GetEnv("PGPWD", "root")
	PGDB   = GetEnv("PGDB", "policyDB")
	PGHOST = GetEnv("PGHOST", "localhost")
	PGPORT = GetEnv("PGPORT", "5432")

	// HTTP
	HTTPADDR = GetEnv("HTTPADDR", ":8081")

	// 提示词
	EXTRACT = `
你是一个专业的保险保单数据录入员。请从以下保单文本中提取关键结构化信息。
当前日期: {{.CurrentDate}} (用于推算相对时间，如"保险期间一年")

请严格按照以下规则提取字段 (JSON格式):

1. **policy_number**: 保单号 (原样提取，不要改动格式)。
2. **policy_type**: 保单类型。必须归类为以下标准类别之一：
   [LIFE, HEALTH, VEHICLE, HOME, TRAVEL, BUSINESS]
   (寿险=LIFE, 医疗/健康险=HEALTH, 车险=VEHICLE, 家财险=HOME, 旅行险=TRAVEL, 企业险=BUSINESS)
3. **start_date**: 保险起期 (格式: YYYY-MM-DD)。如果文中未提及具体日期，留空。
4. **expiry_date**: 保险止期/到期日 (格式: YYYY-MM-DD)。
   - 可以基于"起期" + "保险期间"进行推算。
   - 如果未提及，留空。
5. **premium**: 保费金额 (纯数字，单位: 元)。
   - 必须将"万元"等统一换算为"元"。
   - 如果金额不固定，填 0。
6. **premium_frequency**: 缴费频率。必须归类为 [MONTHLY, QUARTERLY, YEARLY] 之一，默认 YEARLY。
7. **client_full_name**: 投保人/被保险人姓名 (全称)。
8. **client_email**: 投保人邮箱，未提及留空。
9. **client_phone**: 投保人电话，未提及留空。
10. **client_address**: 投保人地址，未提及留空。
11. **description**: 简明摘要 (50字以内)，描述保障内容。
12. **confidence**: 0到1之间的小数，表示你对以上字段整体准确性的置信度。
    文本模糊、字段靠推算得出时要降低置信度。

文本内容:
{{.Content}}

Output JSON only:
`
)

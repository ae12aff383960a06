package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"policy-portal/types"
	"policy-portal/vars"
)

// FromText 调用 LLM 从保单文本中提取结构化字段。
// LLM 只是不透明的外部服务，这里负责：截断、发 Prompt、剥 markdown 围栏、反序列化。
func FromText(ctx context.Context, chatModel model.ToolCallingChatModel, content string, today time.Time) (*types.PolicyRawData, error) {
	if len(content) > 10000 {
		content = content[:10000]
	}

	prompt := strings.ReplaceAll(vars.EXTRACT, "{{.Content}}", content)
	prompt = strings.ReplaceAll(prompt, "{{.CurrentDate}}", today.Format("2006-01-02"))

	resp, err := chatModel.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	if err != nil {
		return nil, err
	}

	jsonStr := strings.TrimSpace(resp.Content)
	jsonStr = strings.TrimPrefix(jsonStr, "```json")
	jsonStr = strings.TrimPrefix(jsonStr, "```")
	jsonStr = strings.TrimSuffix(jsonStr, "```")

	var raw types.PolicyRawData
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal failed: %v, raw: %s", err, jsonStr)
	}
	return &raw, nil
}

// Clean 把 LLM 返回的弱类型字段清洗成可以直接预填表单的结果。
// 清洗只做宽松降级（非法值→留空/0），不报错——提取失败不应卡住建单流程。
func Clean(raw *types.PolicyRawData) types.ExtractResult {
	res := types.ExtractResult{
		Success:        true,
		PolicyNumber:   strings.TrimSpace(raw.PolicyNumber),
		ClientFullName: strings.TrimSpace(raw.ClientFullName),
		ClientEmail:    strings.TrimSpace(raw.ClientEmail),
		ClientPhone:    strings.TrimSpace(raw.ClientPhone),
		ClientAddress:  strings.TrimSpace(raw.ClientAddress),
		Description:    strings.TrimSpace(raw.Description),
	}

	// 枚举归一化，LLM 偶尔返回小写
	if t := types.PolicyType(strings.ToUpper(strings.TrimSpace(raw.PolicyType))); t.Valid() {
		res.PolicyType = string(t)
	}
	if f := types.PremiumFrequency(strings.ToUpper(strings.TrimSpace(raw.PremiumFrequency))); f.Valid() {
		res.PremiumFrequency = string(f)
	}

	// 日期校验：解析不了就留空，让用户自己填
	if raw.StartDate != nil {
		if _, err := time.Parse("2006-01-02", *raw.StartDate); err == nil {
			res.StartDate = *raw.StartDate
		}
	}
	if raw.ExpiryDate != nil {
		if _, err := time.Parse("2006-01-02", *raw.ExpiryDate); err == nil {
			res.ExpiryDate = *raw.ExpiryDate
		}
	}

	res.Premium = cleanAmount(raw.Premium)

	// 置信度夹到 [0,1]，低于阈值打标，只提示不拦截
	conf := raw.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	res.Confidence = conf
	res.LowConfidence = conf < vars.ConfidenceThreshold

	return res
}

// cleanAmount LLM 可能返回数字，也可能返回 "1,000" 或 "100万" 这类字符串
func cleanAmount(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		if val < 0 {
			return 0
		}
		return val
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(val), ",", "")
		if s == "" {
			return 0
		}
		multiplier := 1.0
		if strings.Contains(s, "万") {
			s = strings.ReplaceAll(s, "万", "")
			multiplier = 10000.0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
			return f * multiplier
		}
	}
	return 0
}

// Package policyfilter 保单列表的组合过滤引擎。
// 所有条件取逻辑与；在内存快照上运行，不改数据、不排序、不抛错。
package policyfilter

import (
	"strconv"
	"strings"
	"time"

	"policy-portal/logic/renewal"
	"policy-portal/types"
)

// Apply 对保单快照应用一组过滤条件，返回可见子集。
// 保持输入顺序（调用方负责按到期日升序取数），绝不修改入参。
func Apply(policies []types.Policy, c types.FilterCriteria, today time.Time) []types.Policy {
	query := strings.ToLower(strings.TrimSpace(c.SearchQuery))

	minPremium, hasMin := parseAmount(c.Advanced.MinPremium)
	maxPremium, hasMax := parseAmount(c.Advanced.MaxPremium)
	expiryFrom, hasFrom := parseDate(c.Advanced.ExpiryFrom)
	expiryTo, hasTo := parseDate(c.Advanced.ExpiryTo)

	result := make([]types.Policy, 0, len(policies))
	for _, p := range policies {
		if !matchBucket(p, c.StatusBucket, today) {
			continue
		}
		if query != "" && !matchSearch(p, query) {
			continue
		}
		if c.Advanced.PolicyType != "" && !strings.EqualFold(string(p.PolicyType), c.Advanced.PolicyType) {
			continue
		}
		if c.Advanced.PremiumFrequency != "" && !strings.EqualFold(string(p.PremiumFrequency), c.Advanced.PremiumFrequency) {
			continue
		}
		if hasMin && p.Premium < minPremium {
			continue
		}
		if hasMax && p.Premium > maxPremium {
			continue
		}
		if hasFrom && calendarDay(p.ExpiryDate).Before(expiryFrom) {
			continue
		}
		if hasTo && calendarDay(p.ExpiryDate).After(expiryTo) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Aggregate 汇总计数，永远统计完整集合，与当前过滤无关。
// expiring 用的是派生分类（隐含 ACTIVE），expired 用的是权威状态字段。
func Aggregate(policies []types.Policy, today time.Time) types.Summary {
	s := types.Summary{Total: len(policies)}
	for _, p := range policies {
		if p.PolicyStatus == types.StatusActive {
			s.Active++
		}
		if p.PolicyStatus == types.StatusExpired {
			s.Expired++
		}
		if renewal.Classify(p, today).State == renewal.StateExpiringSoon {
			s.Expiring++
		}
	}
	return s
}

// matchBucket 状态 Tab：
//   - EXPIRED 匹配权威状态字段，不看日期
//   - EXPIRING 匹配分类结果 (ACTIVE 且 30 天内到期)，这是唯一掺日期的 Tab
//
// 未知的 bucket 值按 ALL 处理，过滤器必须对任何输入都有定义。
func matchBucket(p types.Policy, bucket types.StatusBucket, today time.Time) bool {
	switch bucket {
	case types.BucketActive:
		return p.PolicyStatus == types.StatusActive
	case types.BucketExpiring:
		return p.PolicyStatus == types.StatusActive &&
			renewal.Classify(p, today).State == renewal.StateExpiringSoon
	case types.BucketExpired:
		return p.PolicyStatus == types.StatusExpired
	default:
		return true
	}
}

// matchSearch 子串匹配，不分词、不做模糊。query 已经 trim + 小写。
// 任意一个字段命中即通过。
func matchSearch(p types.Policy, query string) bool {
	fields := [...]string{
		p.PolicyNumber,
		p.ClientFullName,
		p.ClientEmail,
		p.ClientPhone,
		string(p.PolicyType),
		p.Description,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// parseAmount 非法数字视为"无约束"，绝不让整个过滤失败
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseDate 同上，非法日期视为"无约束"
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// calendarDay 按日历日比较，忽略时分秒，统一 UTC
func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

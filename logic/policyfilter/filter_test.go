package policyfilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policy-portal/types"
)

var today = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

// 固定的三单样本：ACTIVE+10天 / ACTIVE+45天 / EXPIRED-5天
func samplePolicies() []types.Policy {
	return []types.Policy{
		{
			ID: 1, PolicyNumber: "POL-001", PolicyType: types.TypeLife,
			PolicyStatus: types.StatusActive, ExpiryDate: today.AddDate(0, 0, 10),
			Premium: 500, PremiumFrequency: types.FreqYearly,
			ClientFullName: "张伟", ClientEmail: "zhangwei@example.com", ClientPhone: "13800000001",
		},
		{
			ID: 2, PolicyNumber: "POL-002", PolicyType: types.TypeHealth,
			PolicyStatus: types.StatusActive, ExpiryDate: today.AddDate(0, 0, 45),
			Premium: 1200, PremiumFrequency: types.FreqMonthly,
			ClientFullName: "李娜", ClientEmail: "lina@example.com", ClientPhone: "13800000002",
		},
		{
			ID: 3, PolicyNumber: "POL-003", PolicyType: types.TypeLife,
			PolicyStatus: types.StatusExpired, ExpiryDate: today.AddDate(0, 0, -5),
			Premium: 300, PremiumFrequency: types.FreqYearly,
			ClientFullName: "王芳", ClientEmail: "wangfang@example.com", ClientPhone: "13800000003",
		},
	}
}

func ids(policies []types.Policy) []int64 {
	out := make([]int64, 0, len(policies))
	for _, p := range policies {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyIdentity(t *testing.T) {
	// 空条件 = 原样返回
	policies := samplePolicies()
	got := Apply(policies, types.FilterCriteria{StatusBucket: types.BucketAll}, today)
	assert.Equal(t, policies, got)

	// StatusBucket 缺省（空串）也等价于 ALL
	got = Apply(policies, types.FilterCriteria{}, today)
	assert.Equal(t, policies, got)
}

func TestApplyStatusBuckets(t *testing.T) {
	policies := samplePolicies()

	assert.Equal(t, []int64{1, 2}, ids(Apply(policies, types.FilterCriteria{StatusBucket: types.BucketActive}, today)))
	assert.Equal(t, []int64{1}, ids(Apply(policies, types.FilterCriteria{StatusBucket: types.BucketExpiring}, today)))
	assert.Equal(t, []int64{3}, ids(Apply(policies, types.FilterCriteria{StatusBucket: types.BucketExpired}, today)))
}

func TestExpiredBucketUsesAuthoritativeStatus(t *testing.T) {
	// 状态还是 ACTIVE 但日期已过的单：不进 EXPIRED Tab（Tab 只认权威状态字段），
	// 也不进 EXPIRING Tab（分类结果是 EXPIRED_BY_DATE 而不是 EXPIRING_SOON）
	policies := []types.Policy{
		{ID: 7, PolicyNumber: "POL-007", PolicyType: types.TypeHome,
			PolicyStatus: types.StatusActive, ExpiryDate: today.AddDate(0, 0, -3), Premium: 100},
	}
	assert.Empty(t, Apply(policies, types.FilterCriteria{StatusBucket: types.BucketExpired}, today))
	assert.Empty(t, Apply(policies, types.FilterCriteria{StatusBucket: types.BucketExpiring}, today))
	assert.Equal(t, []int64{7}, ids(Apply(policies, types.FilterCriteria{StatusBucket: types.BucketActive}, today)))
}

func TestExpiringBucketExcludesNonActive(t *testing.T) {
	// 已退保但到期日在窗口内：权威状态优先，不算即将到期
	policies := []types.Policy{
		{ID: 8, PolicyNumber: "POL-008", PolicyType: types.TypeTravel,
			PolicyStatus: types.StatusCancelled, ExpiryDate: today.AddDate(0, 0, 10), Premium: 100},
	}
	assert.Empty(t, Apply(policies, types.FilterCriteria{StatusBucket: types.BucketExpiring}, today))
}

func TestApplySearch(t *testing.T) {
	policies := samplePolicies()

	// 类型名也在检索字段里
	got := Apply(policies, types.FilterCriteria{SearchQuery: "health"}, today)
	assert.Equal(t, []int64{2}, ids(got))

	// 大小写不敏感 + 前后空白剥掉
	got = Apply(policies, types.FilterCriteria{SearchQuery: "  POL-001  "}, today)
	assert.Equal(t, []int64{1}, ids(got))

	// 客户姓名/邮箱/电话都可命中
	assert.Equal(t, []int64{3}, ids(Apply(policies, types.FilterCriteria{SearchQuery: "王芳"}, today)))
	assert.Equal(t, []int64{2}, ids(Apply(policies, types.FilterCriteria{SearchQuery: "LINA@"}, today)))
	assert.Equal(t, []int64{1}, ids(Apply(policies, types.FilterCriteria{SearchQuery: "13800000001"}, today)))

	// 空查询不收窄
	assert.Len(t, Apply(policies, types.FilterCriteria{SearchQuery: "   "}, today), 3)

	// 未命中
	assert.Empty(t, Apply(policies, types.FilterCriteria{SearchQuery: "不存在的关键词"}, today))
}

func TestApplyAdvancedFilters(t *testing.T) {
	policies := samplePolicies()

	byType := types.FilterCriteria{Advanced: types.AdvancedFilter{PolicyType: "LIFE"}}
	assert.Equal(t, []int64{1, 3}, ids(Apply(policies, byType, today)))

	// 枚举输入大小写不敏感
	byType.Advanced.PolicyType = "life"
	assert.Equal(t, []int64{1, 3}, ids(Apply(policies, byType, today)))

	byFreq := types.FilterCriteria{Advanced: types.AdvancedFilter{PremiumFrequency: "MONTHLY"}}
	assert.Equal(t, []int64{2}, ids(Apply(policies, byFreq, today)))

	byPremium := types.FilterCriteria{Advanced: types.AdvancedFilter{MinPremium: "400", MaxPremium: "1000"}}
	assert.Equal(t, []int64{1}, ids(Apply(policies, byPremium, today)))

	// 边界含等号
	exact := types.FilterCriteria{Advanced: types.AdvancedFilter{MinPremium: "500", MaxPremium: "500"}}
	assert.Equal(t, []int64{1}, ids(Apply(policies, exact, today)))

	byDate := types.FilterCriteria{Advanced: types.AdvancedFilter{
		ExpiryFrom: today.Format("2006-01-02"),
		ExpiryTo:   today.AddDate(0, 0, 30).Format("2006-01-02"),
	}}
	assert.Equal(t, []int64{1}, ids(Apply(policies, byDate, today)))
}

func TestApplyMalformedBoundsDegradeToNoConstraint(t *testing.T) {
	policies := samplePolicies()

	// 非法数字/日期 = 无约束，绝不是"全不匹配"
	criteria := types.FilterCriteria{Advanced: types.AdvancedFilter{
		MinPremium: "abc",
		MaxPremium: "12,00",
		ExpiryFrom: "2026/03/15",
		ExpiryTo:   "not-a-date",
	}}
	assert.Len(t, Apply(policies, criteria, today), 3)
}

func TestApplyConjunction(t *testing.T) {
	policies := samplePolicies()
	criteria := types.FilterCriteria{
		StatusBucket: types.BucketActive,
		SearchQuery:  "example.com",
		Advanced:     types.AdvancedFilter{PolicyType: "LIFE", MaxPremium: "800"},
	}
	assert.Equal(t, []int64{1}, ids(Apply(policies, criteria, today)))
}

func TestApplyMonotonicUnderNarrowing(t *testing.T) {
	policies := samplePolicies()
	base := types.FilterCriteria{StatusBucket: types.BucketActive}
	baseLen := len(Apply(policies, base, today))

	narrower := []types.FilterCriteria{
		{StatusBucket: types.BucketActive, Advanced: types.AdvancedFilter{PolicyType: "LIFE"}},
		{StatusBucket: types.BucketActive, Advanced: types.AdvancedFilter{MinPremium: "600"}},
		{StatusBucket: types.BucketActive, Advanced: types.AdvancedFilter{ExpiryTo: today.AddDate(0, 0, 20).Format("2006-01-02")}},
		{StatusBucket: types.BucketActive, SearchQuery: "POL-002"},
	}
	for _, c := range narrower {
		assert.LessOrEqual(t, len(Apply(policies, c, today)), baseLen)
	}
}

func TestApplyIdempotentAndPure(t *testing.T) {
	policies := samplePolicies()
	criteria := types.FilterCriteria{StatusBucket: types.BucketExpiring, SearchQuery: "pol"}

	first := Apply(policies, criteria, today)
	second := Apply(policies, criteria, today)
	assert.Equal(t, first, second)

	// 入参集合不被改动、顺序不被打乱
	assert.Equal(t, samplePolicies(), policies)
}

func TestApplyPreservesInputOrder(t *testing.T) {
	// 过滤器不重排，入参什么顺序出参就什么顺序
	policies := samplePolicies()
	reversed := []types.Policy{policies[2], policies[1], policies[0]}
	got := Apply(reversed, types.FilterCriteria{}, today)
	assert.Equal(t, []int64{3, 2, 1}, ids(got))
}

func TestAggregate(t *testing.T) {
	s := Aggregate(samplePolicies(), today)
	assert.Equal(t, types.Summary{Total: 3, Active: 2, Expiring: 1, Expired: 1}, s)
}

func TestAggregateIgnoresCriteria(t *testing.T) {
	// 汇总永远统计全集：先过滤再汇总是错误用法，这里验证二者确实独立
	policies := samplePolicies()
	filtered := Apply(policies, types.FilterCriteria{StatusBucket: types.BucketExpired}, today)
	require.Len(t, filtered, 1)

	full := Aggregate(policies, today)
	assert.Equal(t, 3, full.Total)
}

func TestAggregateDateExpiredStillActive(t *testing.T) {
	// 状态没流转的日期过期单：算 active 不算 expired，expiring 也不算
	policies := []types.Policy{
		{ID: 9, PolicyStatus: types.StatusActive, ExpiryDate: today.AddDate(0, 0, -2)},
	}
	s := Aggregate(policies, today)
	assert.Equal(t, types.Summary{Total: 1, Active: 1, Expiring: 0, Expired: 0}, s)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, types.Summary{}, Aggregate(nil, today))
}

package renewal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"policy-portal/types"
)

var today = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func policyWith(status types.PolicyStatus, expiry time.Time) types.Policy {
	return types.Policy{
		ID:           1,
		PolicyNumber: "POL-001",
		PolicyType:   types.TypeLife,
		PolicyStatus: status,
		ExpiryDate:   expiry,
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(today, today))
	assert.Equal(t, 10, DaysUntil(today.AddDate(0, 0, 10), today))
	assert.Equal(t, -5, DaysUntil(today.AddDate(0, 0, -5), today))
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// 到期日带时分秒、today 是深夜，都不应该影响日历日差值
	lateToday := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)
	expiryMorning := time.Date(2026, 3, 16, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysUntil(expiryMorning, lateToday))

	// 非 UTC 时区输入也先归一化到 UTC 再比
	shanghai := time.FixedZone("CST", 8*3600)
	expiryCST := time.Date(2026, 3, 16, 2, 0, 0, 0, shanghai) // UTC 2026-03-15 18:00
	assert.Equal(t, 0, DaysUntil(expiryCST, today))
}

func TestClassifyStatusPrecedence(t *testing.T) {
	// 非 ACTIVE 的保单无论日期如何都是 NOT_ACTIVE，分类器不拿日期推翻权威状态
	tomorrow := today.AddDate(0, 0, 1)
	for _, status := range []types.PolicyStatus{types.StatusExpired, types.StatusRenewed, types.StatusCancelled} {
		cls := Classify(policyWith(status, tomorrow), today)
		assert.Equal(t, StateNotActive, cls.State, "status=%s", status)
		assert.Equal(t, 1, cls.DaysUntilExpiry)
	}
}

func TestClassifyActiveBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		daysOut int
		want    State
	}{
		{"今天到期", 0, StateExpiredByDate},
		{"昨天已到期", -1, StateExpiredByDate},
		{"很久以前到期", -365, StateExpiredByDate},
		{"明天到期", 1, StateExpiringSoon},
		{"窗口上沿 30 天", 30, StateExpiringSoon},
		{"窗口外 31 天", 31, StateActiveFar},
		{"一年后", 365, StateActiveFar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := Classify(policyWith(types.StatusActive, today.AddDate(0, 0, tt.daysOut)), today)
			assert.Equal(t, tt.want, cls.State)
			assert.Equal(t, tt.daysOut, cls.DaysUntilExpiry)
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	p := policyWith(types.StatusActive, today.AddDate(0, 0, 10))
	first := Classify(p, today)
	second := Classify(p, today)
	assert.Equal(t, first, second)
	// 入参不被改动
	assert.Equal(t, types.StatusActive, p.PolicyStatus)
}

func TestTierOf(t *testing.T) {
	assert.Equal(t, TierUrgent, TierOf(0))
	assert.Equal(t, TierUrgent, TierOf(7))
	assert.Equal(t, TierWarning, TierOf(8))
	assert.Equal(t, TierWarning, TierOf(30))
	assert.Equal(t, TierSafe, TierOf(31))
}

func TestTierReproducibleFromClassification(t *testing.T) {
	// 分档是展示层概念，但必须能从 DaysUntilExpiry 完全复现
	for _, daysOut := range []int{1, 7, 8, 30, 31, 100} {
		cls := Classify(policyWith(types.StatusActive, today.AddDate(0, 0, daysOut)), today)
		assert.Equal(t, TierOf(daysOut), TierOf(cls.DaysUntilExpiry))
	}
}

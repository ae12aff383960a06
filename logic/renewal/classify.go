// Package renewal 续保分类核心：根据权威状态 + 到期日推导续保紧迫度。
// 纯函数，today 必须由调用方显式传入，内部绝不读系统时钟。
package renewal

import (
	"time"

	"policy-portal/types"
)

// State 派生的续保状态，不落库，每次读取时重算
type State string

const (
	// StateNotActive 权威状态非 ACTIVE (已过期/已续保/已退保)，日期一律不看
	StateNotActive State = "NOT_ACTIVE"
	// StateExpiredByDate 状态还是 ACTIVE 但日期已到期 (后端状态尚未流转)
	StateExpiredByDate State = "EXPIRED_BY_DATE"
	StateExpiringSoon  State = "EXPIRING_SOON"
	StateActiveFar     State = "ACTIVE_FAR"
)

// Tier 展示层的紧迫度分档，由 DaysUntilExpiry 完全可复现
type Tier string

const (
	TierUrgent  Tier = "URGENT"
	TierWarning Tier = "WARNING"
	TierSafe    Tier = "SAFE"
)

const (
	// ExpiringWindowDays 进入"即将到期"的窗口
	ExpiringWindowDays = 30
	// UrgentWindowDays 展示层标红的窗口
	UrgentWindowDays = 7
)

type Classification struct {
	DaysUntilExpiry int   `json:"days_until_expiry"`
	State           State `json:"renewal_state"`
}

// midnightUTC 归一化到 UTC 零点。
// 统一用 UTC 做日历日减法，避免跨时区的 naive 减法在边界上差一天。
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil 到期日距今天的日历天数，可以为负。
// 两个时间都先归一化到 UTC 零点，差值必然是整天，等价于 ceil((expiry-today)/1day)。
func DaysUntil(expiry, today time.Time) int {
	diff := midnightUTC(expiry).Sub(midnightUTC(today))
	return int(diff / (24 * time.Hour))
}

// Classify 分类优先级固定：
//  1. 非 ACTIVE -> NOT_ACTIVE，权威状态优先，不用日期推翻它
//  2. days <= 0 -> EXPIRED_BY_DATE
//  3. 0 < days <= 30 -> EXPIRING_SOON
//  4. 其余 -> ACTIVE_FAR
func Classify(p types.Policy, today time.Time) Classification {
	days := DaysUntil(p.ExpiryDate, today)

	if p.PolicyStatus != types.StatusActive {
		return Classification{DaysUntilExpiry: days, State: StateNotActive}
	}
	switch {
	case days <= 0:
		return Classification{DaysUntilExpiry: days, State: StateExpiredByDate}
	case days <= ExpiringWindowDays:
		return Classification{DaysUntilExpiry: days, State: StateExpiringSoon}
	default:
		return Classification{DaysUntilExpiry: days, State: StateActiveFar}
	}
}

// TierOf 紧迫度分档：urgent <= 7 天，warning <= 30 天，其余 safe
func TierOf(daysUntilExpiry int) Tier {
	switch {
	case daysUntilExpiry <= UrgentWindowDays:
		return TierUrgent
	case daysUntilExpiry <= ExpiringWindowDays:
		return TierWarning
	default:
		return TierSafe
	}
}

package job

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"policy-portal/logic/renewal"
	"policy-portal/storage/postgres"
)

// StartCronJob 每天凌晨 2 点：
//  1. 把过了到期日还挂着 ACTIVE 的保单批量翻成 EXPIRED（权威状态流转）
//  2. 统计 30 天内到期的保单数，打日志方便运营盯量
//
// 白天新过期的行在状态流转前仍会被分类器按日期标成 "Expired"，
// 这个窗口是有意保留的（行内标签和权威状态本来就是两回事）。
func StartCronJob(pgRepo *postgres.PolicyRepo) *cron.Cron {
	c := cron.New(cron.WithSeconds())

	_, _ = c.AddFunc("0 0 2 * * *", func() {
		ctx := context.Background()
		now := time.Now()

		rows, err := pgRepo.ExpirePolicies(ctx, now)
		if err != nil {
			log.Println("[Cron] 过期状态流转失败:", err)
		} else {
			log.Printf("[Cron] 更新了 %d 份过期保单\n", rows)
		}

		count, err := pgRepo.CountExpiringWithin(ctx, now, renewal.ExpiringWindowDays)
		if err != nil {
			log.Println("[Cron] 即将到期统计失败:", err)
		} else {
			log.Printf("[Cron] %d 天内到期的保单: %d 份\n", renewal.ExpiringWindowDays, count)
		}
	})

	c.Start()
	return c
}

// Package billing 实现信用卡账单周期计算与分期消费的按月展开
package billing

import (
	"time"
)

// lastDayOfMonth 返回指定年月的总天数
func lastDayOfMonth(year int, month time.Month) int {
	// 下月第 0 天即本月最后一天
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// AddMonths 按日历月移动日期
// 目标月无对应日期时收敛到该月最后一天（如 1月31日 + 1月 = 2月28/29日）
// 账单日计算和分期日期计算共用此实现，保证边界行为一致
func AddMonths(t time.Time, months int) time.Time {
	// 先定位目标月的 1 号，避免 time.AddDate 的跨月进位
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := lastDayOfMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// ClosingDate 计算指定年月的账单日
// closingDay 超过当月天数时按当月最后一天出账（如 31 日在 4 月按 30 日）
func ClosingDate(year int, month time.Month, closingDay int) time.Time {
	if last := lastDayOfMonth(year, month); closingDay > last {
		closingDay = last
	}
	return time.Date(year, month, closingDay, 0, 0, 0, 0, time.Local)
}

// ResolvePeriod 解析 (year, month) 期账单的消费日期区间 [start, end]（闭区间）
// 规则：账单日当天的消费计入下一期账单，因此
//
//	end   = 本月账单日前一天
//	start = 上月账单日当天
//
// 上月账单日同样按 closingDay 对上月收敛，保证相邻两期无缝拼接
func ResolvePeriod(year int, month time.Month, closingDay int) (start, end time.Time) {
	closing := ClosingDate(year, month, closingDay)
	prevMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	start = ClosingDate(prevMonth.Year(), prevMonth.Month(), closingDay)
	return start, closing.AddDate(0, 0, -1)
}

// MonthWindow 返回自然月的半开区间 [当月1号, 下月1号)
func MonthWindow(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

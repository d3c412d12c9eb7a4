package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestAddMonths(t *testing.T) {
	// 普通情况
	assert.Equal(t, date(2025, 8, 25), AddMonths(date(2025, 7, 25), 1))
	assert.Equal(t, date(2025, 9, 25), AddMonths(date(2025, 7, 25), 2))

	// 跨年
	assert.Equal(t, date(2026, 1, 15), AddMonths(date(2025, 11, 15), 2))

	// 月末收敛：1月31日 + 1月 = 2月28日，而不是 3月3日
	assert.Equal(t, date(2025, 2, 28), AddMonths(date(2025, 1, 31), 1))
	// 闰年 2 月
	assert.Equal(t, date(2024, 2, 29), AddMonths(date(2024, 1, 31), 1))
	// 31 日进入 30 天的月份
	assert.Equal(t, date(2025, 4, 30), AddMonths(date(2025, 3, 31), 1))

	// 收敛只影响目标月，不会把后续月份也压到 28/30 日
	assert.Equal(t, date(2025, 3, 31), AddMonths(date(2025, 1, 31), 2))

	// 负数月
	assert.Equal(t, date(2025, 6, 30), AddMonths(date(2025, 7, 31), -1))
}

func TestClosingDate(t *testing.T) {
	assert.Equal(t, date(2025, 8, 20), ClosingDate(2025, time.August, 20))

	// 账单日超过当月天数时按最后一天出账
	assert.Equal(t, date(2025, 2, 28), ClosingDate(2025, time.February, 31))
	assert.Equal(t, date(2024, 2, 29), ClosingDate(2024, time.February, 31))
	assert.Equal(t, date(2025, 4, 30), ClosingDate(2025, time.April, 31))
	assert.Equal(t, date(2025, 1, 31), ClosingDate(2025, time.January, 31))
}

func TestResolvePeriod(t *testing.T) {
	// 账单日 20：9 月账单覆盖 8月20日 ～ 9月19日
	start, end := ResolvePeriod(2025, time.September, 20)
	assert.Equal(t, date(2025, 8, 20), start)
	assert.Equal(t, date(2025, 9, 19), end)

	// 账单日当天的消费属于下一期：8月20日 落在 9 月账单的区间内
	assert.False(t, date(2025, 8, 20).Before(start))
	assert.True(t, date(2025, 8, 20).Before(end.AddDate(0, 0, 1)))

	// 8 月账单截止到 8月19日，不包含 8月20日
	_, endAug := ResolvePeriod(2025, time.August, 20)
	assert.Equal(t, date(2025, 8, 19), endAug)

	// 跨年：1 月账单从上一年 12 月的账单日开始
	start, end = ResolvePeriod(2025, time.January, 10)
	assert.Equal(t, date(2024, 12, 10), start)
	assert.Equal(t, date(2025, 1, 9), end)
}

func TestResolvePeriod_ClampedClosingDay(t *testing.T) {
	// 账单日 31：3 月账单从 2月28日 开始，截止 3月30日
	start, end := ResolvePeriod(2025, time.March, 31)
	assert.Equal(t, date(2025, 2, 28), start)
	assert.Equal(t, date(2025, 3, 30), end)

	// 5 月账单从 4月30日（收敛）开始，截止 5月30日
	start, end = ResolvePeriod(2025, time.May, 31)
	assert.Equal(t, date(2025, 4, 30), start)
	assert.Equal(t, date(2025, 5, 30), end)
}

// 相邻两期的区间必须无缝拼接：上一期 end + 1 天 = 下一期 start
func TestResolvePeriod_ConsecutivePartition(t *testing.T) {
	for _, closingDay := range []int{1, 5, 15, 28, 29, 30, 31} {
		cursor := date(2024, 1, 1)
		for i := 0; i < 24; i++ {
			start, end := ResolvePeriod(cursor.Year(), cursor.Month(), closingDay)
			assert.True(t, !start.After(end), "closingDay=%d %v: start > end", closingDay, cursor)

			next := cursor.AddDate(0, 1, 0)
			nextStart, _ := ResolvePeriod(next.Year(), next.Month(), closingDay)
			assert.Equal(t, end.AddDate(0, 0, 1), nextStart,
				"closingDay=%d %v: 区间有缝隙或重叠", closingDay, cursor)
			cursor = next
		}
	}
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(2025, time.August)
	assert.Equal(t, date(2025, 8, 1), start)
	assert.Equal(t, date(2025, 9, 1), end)

	// 12 月跨年
	start, end = MonthWindow(2025, time.December)
	assert.Equal(t, date(2025, 12, 1), start)
	assert.Equal(t, date(2026, 1, 1), end)
}

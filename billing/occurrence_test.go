package billing

import (
	"testing"
	"time"

	"finbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardID(id uint) *uint {
	return &id
}

func normalExpense(id uint, day time.Time, amount float64) models.Expense {
	return models.Expense{
		ID:           id,
		TotalAmount:  amount,
		PurchaseDate: day,
		CategoryID:   1,
	}
}

func installmentExpense(id uint, day time.Time, total float64, count int) models.Expense {
	return models.Expense{
		ID:                id,
		TotalAmount:       total,
		PurchaseDate:      day,
		IsInstallment:     true,
		InstallmentCount:  count,
		InstallmentAmount: total / float64(count),
		CategoryID:        1,
		CardID:            cardID(1),
	}
}

func TestMaterialize_NormalOnly(t *testing.T) {
	start, end := MonthWindow(2025, time.August)
	normals := []models.Expense{normalExpense(1, date(2025, 8, 10), 50)}

	got := Materialize(normals, nil, start, end)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, 50.0, got[0].Amount)
	assert.Equal(t, date(2025, 8, 10), got[0].OccurrenceDate)
	assert.Equal(t, 0, got[0].InstallmentIndex)
}

func TestMaterialize_InstallmentExpansion(t *testing.T) {
	// 2025-07-25 购买，3 期，每期 200：分别落在 7/8/9 月的 25 日
	e := installmentExpense(1, date(2025, 7, 25), 600, 3)

	for i, m := range []time.Month{time.July, time.August, time.September} {
		start, end := MonthWindow(2025, m)
		got := Materialize(nil, []models.Expense{e}, start, end)
		require.Len(t, got, 1, "month %v", m)
		assert.Equal(t, 200.0, got[0].Amount)
		assert.Equal(t, date(2025, m, 25), got[0].OccurrenceDate)
		assert.Equal(t, i+1, got[0].InstallmentIndex)
	}

	// 购买前一个月和还清后的下一个月都不应出现
	start, end := MonthWindow(2025, time.June)
	assert.Empty(t, Materialize(nil, []models.Expense{e}, start, end))
	start, end = MonthWindow(2025, time.October)
	assert.Empty(t, Materialize(nil, []models.Expense{e}, start, end))
}

func TestMaterialize_TwelveInstallmentsAcrossTwelveWindows(t *testing.T) {
	e := installmentExpense(1, date(2025, 1, 15), 1200, 12)

	seen := map[int]bool{}
	cursor := date(2025, 1, 1)
	for i := 0; i < 12; i++ {
		start, end := MonthWindow(cursor.Year(), cursor.Month())
		got := Materialize(nil, []models.Expense{e}, start, end)
		require.Len(t, got, 1, "window %v", cursor)
		assert.Equal(t, 100.0, got[0].Amount)
		assert.False(t, seen[got[0].InstallmentIndex], "期数 %d 重复出现", got[0].InstallmentIndex)
		assert.GreaterOrEqual(t, got[0].InstallmentIndex, 1)
		assert.LessOrEqual(t, got[0].InstallmentIndex, 12)
		seen[got[0].InstallmentIndex] = true
		cursor = cursor.AddDate(0, 1, 0)
	}
	assert.Len(t, seen, 12)
}

func TestMaterialize_MonthEndClamping(t *testing.T) {
	// 1月31日购买 4 期：2 月那期落在 2月28日，4 月那期落在 4月30日
	e := installmentExpense(1, date(2025, 1, 31), 400, 4)

	start, end := MonthWindow(2025, time.February)
	got := Materialize(nil, []models.Expense{e}, start, end)
	require.Len(t, got, 1)
	assert.Equal(t, date(2025, 2, 28), got[0].OccurrenceDate)
	assert.Equal(t, 2, got[0].InstallmentIndex)

	start, end = MonthWindow(2025, time.April)
	got = Materialize(nil, []models.Expense{e}, start, end)
	require.Len(t, got, 1)
	assert.Equal(t, date(2025, 4, 30), got[0].OccurrenceDate)
	assert.Equal(t, 4, got[0].InstallmentIndex)
}

func TestMaterialize_SortOrder(t *testing.T) {
	start, end := MonthWindow(2025, time.August)
	normals := []models.Expense{
		normalExpense(1, date(2025, 8, 5), 10),
		normalExpense(2, date(2025, 8, 20), 20),
		normalExpense(3, date(2025, 8, 20), 30),
	}
	installments := []models.Expense{installmentExpense(4, date(2025, 7, 20), 300, 3)}

	got := Materialize(normals, installments, start, end)
	require.Len(t, got, 4)

	// 日期倒序，同日按 ID 倒序：8/20(id=4 分期第2期), 8/20(id=3), 8/20(id=2), 8/5(id=1)
	assert.Equal(t, uint(4), got[0].ID)
	assert.Equal(t, 2, got[0].InstallmentIndex)
	assert.Equal(t, uint(3), got[1].ID)
	assert.Equal(t, uint(2), got[2].ID)
	assert.Equal(t, uint(1), got[3].ID)
}

func TestMaterialize_InvalidWindow(t *testing.T) {
	normals := []models.Expense{normalExpense(1, date(2025, 8, 10), 50)}

	// Start >= End 返回空而不是报错
	got := Materialize(normals, nil, date(2025, 9, 1), date(2025, 8, 1))
	assert.Empty(t, got)
	got = Materialize(normals, nil, date(2025, 8, 1), date(2025, 8, 1))
	assert.Empty(t, got)
}

func TestMaterialize_StatementWindow(t *testing.T) {
	// 账单日 20 的 9 月账单：8月20日（账单日当天）的消费计入本期
	start, end := ResolvePeriod(2025, time.September, 20)
	windowEnd := end.AddDate(0, 0, 1) // 转为半开区间

	onClosing := normalExpense(1, date(2025, 8, 20), 100)
	justBefore := normalExpense(2, date(2025, 8, 19), 100)

	got := Materialize([]models.Expense{onClosing}, nil, start, windowEnd)
	require.Len(t, got, 1, "账单日当天的消费应计入下一期账单")

	got = Materialize([]models.Expense{justBefore}, nil, start, windowEnd)
	assert.Empty(t, got, "账单日前一天的消费属于上一期")
}

func TestInstallmentIndexFor(t *testing.T) {
	e := installmentExpense(1, date(2025, 7, 25), 600, 3)

	assert.Equal(t, 1, InstallmentIndexFor(&e, 2025, time.July))
	assert.Equal(t, 2, InstallmentIndexFor(&e, 2025, time.August))
	assert.Equal(t, 3, InstallmentIndexFor(&e, 2025, time.September))

	// 范围外：购买前和还清后
	assert.Equal(t, 0, InstallmentIndexFor(&e, 2025, time.June))
	assert.Equal(t, 0, InstallmentIndexFor(&e, 2025, time.October))

	// 跨年整月差
	long := installmentExpense(2, date(2025, 11, 10), 1200, 12)
	assert.Equal(t, 3, InstallmentIndexFor(&long, 2026, time.January))
	assert.Equal(t, 12, InstallmentIndexFor(&long, 2026, time.October))
	assert.Equal(t, 0, InstallmentIndexFor(&long, 2026, time.November))

	// 非分期按 1 期处理
	n := normalExpense(3, date(2025, 7, 25), 100)
	assert.Equal(t, 1, InstallmentIndexFor(&n, 2025, time.July))
	assert.Equal(t, 0, InstallmentIndexFor(&n, 2025, time.August))
}

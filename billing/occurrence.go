package billing

import (
	"sort"
	"time"

	"finbook/models"

	"gorm.io/gorm"
)

// Occurrence 一次消费发生记录
// 对普通消费就是消费记录本身；对分期消费是其中某一期的虚拟记录，
// Amount 为该期应还金额（覆盖 TotalAmount 展示），OccurrenceDate 为该期入账日期
type Occurrence struct {
	models.Expense
	Amount           float64   `json:"amount"`
	OccurrenceDate   time.Time `json:"occurrence_date"`
	InstallmentIndex int       `json:"installment_index,omitempty"` // 第几期，1 起；非分期为 0
}

// Window 消费查询窗口，半开区间 [Start, End)
type Window struct {
	Start     time.Time
	End       time.Time
	CardID    *uint // 只看某张卡
	DebitOnly bool  // 只看借记/现金（无卡）消费
}

// Materialize 将窗口内的消费合并为统一的发生记录列表
// normals 为普通消费（调用方已按窗口过滤），installments 为所有可能落入窗口的分期消费；
// 分期消费按 purchase_date + i 个月逐期展开，只保留落入窗口的期数。
// 结果按发生日期倒序，同日按 ID 倒序。窗口非法（Start >= End）时返回空
func Materialize(normals, installments []models.Expense, start, end time.Time) []Occurrence {
	if !start.Before(end) {
		return []Occurrence{}
	}

	result := make([]Occurrence, 0, len(normals))
	for _, e := range normals {
		result = append(result, Occurrence{
			Expense:        e,
			Amount:         e.TotalAmount,
			OccurrenceDate: e.PurchaseDate,
		})
	}

	for _, e := range installments {
		for i := 0; i < e.Installments(); i++ {
			due := AddMonths(e.PurchaseDate, i)
			if due.Before(start) || !due.Before(end) {
				continue
			}
			result = append(result, Occurrence{
				Expense:          e,
				Amount:           e.InstallmentAmount,
				OccurrenceDate:   due,
				InstallmentIndex: i + 1,
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].OccurrenceDate.Equal(result[j].OccurrenceDate) {
			return result[i].OccurrenceDate.After(result[j].OccurrenceDate)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

// ExpensesInWindow 查询窗口内的全部消费发生记录
// 普通消费按 purchase_date 落窗过滤；分期消费只设上界（几个月前的分期仍可能有期数落在窗口内）。
// 卡筛选是谓词：卡不存在时自然得到空结果，不报错
func ExpensesInWindow(db *gorm.DB, w Window) ([]Occurrence, error) {
	if !w.Start.Before(w.End) {
		return []Occurrence{}, nil
	}

	normalQ := db.Preload("Category").Preload("Card").
		Where("is_installment = ? AND purchase_date >= ? AND purchase_date < ?", false, w.Start, w.End)
	installmentQ := db.Preload("Category").Preload("Card").
		Where("is_installment = ? AND purchase_date < ?", true, w.End)

	if w.CardID != nil {
		normalQ = normalQ.Where("card_id = ?", *w.CardID)
		installmentQ = installmentQ.Where("card_id = ?", *w.CardID)
	}
	if w.DebitOnly {
		normalQ = normalQ.Where("card_id IS NULL")
		installmentQ = installmentQ.Where("card_id IS NULL")
	}

	var normals []models.Expense
	if err := normalQ.Find(&normals).Error; err != nil {
		return nil, err
	}
	var installments []models.Expense
	if err := installmentQ.Find(&installments).Error; err != nil {
		return nil, err
	}

	return Materialize(normals, installments, w.Start, w.End), nil
}

// InstallmentIndexFor 计算 (year, month) 是分期消费的第几期（1 起）
// 按整月差计算：晚于购买月 n 个月即第 n+1 期；不在分期范围内返回 0
func InstallmentIndexFor(e *models.Expense, year int, month time.Month) int {
	idx := (year-e.PurchaseDate.Year())*12 + int(month-e.PurchaseDate.Month()) + 1
	// 超出期数说明该月已还清，负数说明尚未购买；月末收敛不影响整月差
	if idx < 1 || idx > e.Installments() {
		return 0
	}
	return idx
}

// ActiveInstallments 查询指定月份仍在还款中的分期消费
// 每笔分期消费至多出现一次，InstallmentIndex 标记当月是第几期；
// Amount 保留购买总额，便于分期视图同时展示总价和当前期数
func ActiveInstallments(db *gorm.DB, year int, month time.Month) ([]Occurrence, error) {
	var purchases []models.Expense
	if err := db.Preload("Category").Preload("Card").
		Where("is_installment = ?", true).
		Order("purchase_date DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}

	result := make([]Occurrence, 0, len(purchases))
	for _, e := range purchases {
		idx := InstallmentIndexFor(&e, year, month)
		if idx == 0 {
			continue
		}
		result = append(result, Occurrence{
			Expense:          e,
			Amount:           e.TotalAmount,
			OccurrenceDate:   AddMonths(e.PurchaseDate, idx-1),
			InstallmentIndex: idx,
		})
	}
	return result, nil
}

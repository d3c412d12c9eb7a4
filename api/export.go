package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"finbook/billing"
	"finbook/database"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// monthOccurrences 查询导出月份的消费发生记录，参数错误时已写入响应
func (h *ExportHandler) monthOccurrences(c *gin.Context) ([]billing.Occurrence, int, int, bool) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		BadRequest(c, "year 和 month 参数必填")
		return nil, 0, 0, false
	}

	start, end := billing.MonthWindow(year, month)
	occurrences, err := billing.ExpensesInWindow(database.DB, billing.Window{Start: start, End: end})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return nil, 0, 0, false
	}
	return occurrences, year, int(month), true
}

// 导出行的公共列
func occurrenceRow(o billing.Occurrence) []string {
	category := ""
	if o.Category != nil {
		category = o.Category.Name
	}
	payment := "借记/现金"
	if o.Card != nil {
		payment = o.Card.Name
	}
	installment := "-"
	if o.IsInstallment {
		installment = fmt.Sprintf("%d/%d", o.InstallmentIndex, o.InstallmentCount)
	}
	return []string{
		fmt.Sprintf("%d", o.ID),
		o.Description,
		fmt.Sprintf("%.2f", o.Amount),
		category,
		payment,
		installment,
		o.Payer,
		o.OccurrenceDate.Format(dateLayout),
	}
}

var exportHeaders = []string{"ID", "描述", "金额", "类别", "支付方式", "分期", "付款人", "日期"}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出月度消费记录为 CSV
// @Description 导出指定月份的全部消费发生记录（含分期当月期数）为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1-12" example(8)
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "缺少 year/month 参数"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	occurrences, year, month, ok := h.monthOccurrences(c)
	if !ok {
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	for _, o := range occurrences {
		if err := writer.Write(occurrenceRow(o)); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("expenses_%04d-%02d.csv", year, month)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出消费记录为 JSON
// @Summary 导出月度消费记录为 JSON
// @Description 导出指定月份的全部消费发生记录（含分期当月期数）和汇总信息
// @Tags 导出
// @Produce json
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1-12" example(8)
// @Success 200 {object} Response "导出成功"
// @Failure 400 {object} Response "缺少 year/month 参数"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	occurrences, year, month, ok := h.monthOccurrences(c)
	if !ok {
		return
	}

	var totalAmount float64
	for _, o := range occurrences {
		totalAmount += o.Amount
	}

	Success(c, gin.H{
		"year":         year,
		"month":        month,
		"total_count":  len(occurrences),
		"total_amount": totalAmount,
		"expenses":     occurrences,
	})
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出月度消费记录为 Excel
// @Description 导出指定月份的全部消费发生记录（含分期当月期数）为带样式的 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1-12" example(8)
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "缺少 year/month 参数"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	occurrences, year, month, ok := h.monthOccurrences(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "消费记录"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "E", 14)
	f.SetColWidth(sheetName, "F", "G", 10)
	f.SetColWidth(sheetName, "H", "H", 14)

	// 写入表头
	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	var totalAmount float64
	for i, o := range occurrences {
		row := i + 2
		for j, value := range occurrenceRow(o) {
			f.SetCellValue(sheetName, fmt.Sprintf("%c%d", 'A'+j, row), value)
		}
		// 金额列用数值，便于在表格里继续求和
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), o.Amount)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), dataStyle)
		totalAmount += o.Amount
	}

	// 汇总行
	summaryRow := len(occurrences) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), totalAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(occurrences)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("H%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow), summaryStyle)

	// 设置响应头
	filename := fmt.Sprintf("消费记录_%04d-%02d.xlsx", year, month)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}

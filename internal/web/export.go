package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleExport(c *gin.Context) {
	records := s.loadRecords(c.Request.Context(), c.Query("q"))
	drops := sortedDrops(records)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"produto", "preco_atual", "preco_anterior", "desconto", "desconto_pct", "data", "link",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, drop := range drops {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, drop.ProductName)
		set(2, drop.PriceCurrent)
		set(3, drop.PricePrevious)
		set(4, drop.DiscountAmount)
		set(5, drop.DiscountPct)
		set(6, formatTimestamp(drop.Timestamp))
		set(7, drop.LinkURL)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("quedas-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func formatTimestamp(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format("2006-01-02 15:04")
}

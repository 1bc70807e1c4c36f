package feed

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"marketpanel/internal"
	"marketpanel/internal/config"
)

// XLSXConnector reads a downloaded .xlsx export of the sheet. Useful
// when the operator works from a saved workbook instead of the live
// published URL.
type XLSXConnector struct {
	path string
}

func NewXLSXConnector(cfg config.Config) *XLSXConnector {
	return &XLSXConnector{path: cfg.FeedFile}
}

func (c *XLSXConnector) Fetch(ctx context.Context) (internal.RawFeed, error) {
	if _, err := os.Stat(c.path); err != nil {
		return internal.RawFeed{}, fmt.Errorf("feed workbook not found: %s", c.path)
	}

	f, err := excelize.OpenFile(c.path)
	if err != nil {
		return internal.RawFeed{}, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return internal.RawFeed{}, err
	}

	_ = ctx
	return tableToFeed(rows), nil
}

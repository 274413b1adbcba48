package export

import (
	"fmt"
	"io"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	sourceSheet  = "Source"
)

// ExcelReporter writes the summary as an xlsx workbook: one row per series on the
// Summary sheet, source metadata on the Source sheet
type ExcelReporter struct {
	writer io.Writer
}

func NewExcelReporter(writer io.Writer) *ExcelReporter {
	return &ExcelReporter{writer: writer}
}

func (x *ExcelReporter) Handle(src domain.Source, summary domain.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := fillSummarySheet(f, summary); err != nil {
		return err
	}
	if err := fillSourceSheet(f, src, summary); err != nil {
		return err
	}

	if err := f.Write(x.writer); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func fillSummarySheet(f *excelize.File, summary domain.Summary) error {
	header := []interface{}{"Series", "Level", "Δ w/w (pp)", "Δ 4 wks (pp)"}
	for _, season := range summary.Seasons {
		header = append(header, season.Name)
	}
	if err := setRow(f, summarySheet, 1, header); err != nil {
		return err
	}

	rows := []struct {
		label string
		week  domain.DeltaRecord
		view  domain.LongViewRecord
	}{
		{"National", summary.NationalWeek, summary.National},
		{"Top gainer: " + summary.Leader.Sector, summary.Leader, summary.LeaderView},
		{"Top decliner: " + summary.Laggard.Sector, summary.Laggard, summary.LaggardView},
	}
	for i, r := range rows {
		values := []interface{}{r.label, r.view.Current, r.week.DeltaPP, r.view.DeltaMonth}
		for _, season := range summary.Seasons {
			if mean, ok := r.view.Seasonal[season.Name]; ok {
				values = append(values, mean)
			} else {
				values = append(values, nil)
			}
		}
		if err := setRow(f, summarySheet, i+2, values); err != nil {
			return err
		}
	}

	breadthRow := len(rows) + 3
	if err := setRow(f, summarySheet, breadthRow, []interface{}{
		"Breadth (% expanding)", summary.BreadthPct, "Sectors compared", summary.SectorsCompared,
	}); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "A", "A", 28)
}

func fillSourceSheet(f *excelize.File, src domain.Source, summary domain.Summary) error {
	if _, err := f.NewSheet(sourceSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sourceSheet, err)
	}
	rows := [][]interface{}{
		{"Source", src.Name},
		{"Country", src.Country},
		{"Anchor", summary.Anchor.Format(time.DateOnly)},
		{"Aggregate URL", src.AggregateURL},
		{"Sector URL", src.SectorURL},
	}
	for i, row := range rows {
		if err := setRow(f, sourceSheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to fill %s!%s: %w", sheet, cell, err)
	}
	return nil
}

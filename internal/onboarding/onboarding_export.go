package onboarding

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const rosterSheet = "Onboarding"

var rosterHeaders = []string{
	"Employee ID", "Employee Name", "Employment Status", "Current Phase", "Overall Status",
	"Completion %", "File Complete", "Started At", "Completed At",
}

// BuildRosterWorkbook renders the onboarding list as an XLSX workbook.
func BuildRosterWorkbook(items []RecordResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Named("onboarding.export").Warn("close workbook failed", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRosterHeader(f); err != nil {
		return nil, fmt.Errorf("write roster header: %w", err)
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			item.EmployeeID,
			item.EmployeeName,
			item.EmploymentStatus,
			item.CurrentPhase,
			item.OverallStatus,
			item.ProfileCompletionPercentage,
			yesNo(item.EmployeeFileComplete),
			formatTime(item.StartedAt),
			formatTime(item.CompletedAt),
		}
		if err := f.SetSheetRow(rosterSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write roster row %d: %w", i+1, err)
		}
	}

	return f.WriteToBuffer()
}

func writeRosterHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(rosterHeaders))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(rosterSheet, "A", lastCol, 22); err != nil {
		return err
	}
	if err := f.SetCellStyle(rosterSheet, "A1", lastCol+"1", style); err != nil {
		return err
	}
	return f.SetSheetRow(rosterSheet, "A1", &rosterHeaders)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

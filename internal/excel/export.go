package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hometeam/chores-back/internal/models"
	"github.com/hometeam/chores-back/internal/schedule"
)

const sheetName = "Week"

// WriteWeek renders the 7-day calendar as a spreadsheet: one column per
// day, Monday first, each entry as "start - end (task)". Days without
// assignments carry the same placeholder the calendar page shows.
func WriteWeek(week schedule.Week) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	for i, day := range models.Week() {
		col := i + 1

		header, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell for %s: %w", day, err)
		}
		if err := f.SetCellValue(sheetName, header, string(day)); err != nil {
			return nil, fmt.Errorf("write header %s: %w", day, err)
		}

		entries := week[day]
		if len(entries) == 0 {
			cell, err := excelize.CoordinatesToCellName(col, 2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, "No schedules for this day."); err != nil {
				return nil, fmt.Errorf("write placeholder for %s: %w", day, err)
			}
			continue
		}

		for j, entry := range entries {
			cell, err := excelize.CoordinatesToCellName(col, j+2)
			if err != nil {
				return nil, err
			}
			value := fmt.Sprintf("%s - %s (%s)", entry.TaskTime, entry.EndTaskTime, entry.TaskName)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("write entry for %s: %w", day, err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "G", 32); err != nil {
		return nil, fmt.Errorf("set column widths: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hometeam/chores-back/internal/models"
	"github.com/hometeam/chores-back/internal/schedule"
	"github.com/hometeam/chores-back/internal/store"
)

func TestWriteWeek(t *testing.T) {
	week := schedule.BuildWeek([]store.WeekRow{
		{UserName: "Alice", TaskName: "Dishes", TaskTime: "09:00:00", DurationMinutes: 20, Day: models.Monday},
		{UserName: "Bob", TaskName: "Vacuum", TaskTime: "11:15:00", DurationMinutes: 30, Day: models.Monday},
	})

	buf, err := WriteWeek(week)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	// Header row runs Monday..Sunday across columns A..G.
	for i, day := range models.Week() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue(sheetName, cell)
		require.NoError(t, err)
		assert.Equal(t, string(day), got)
	}

	a2, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "09:00:00 - 09:20:00 (Dishes)", a2)

	a3, err := f.GetCellValue(sheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "11:15:00 - 11:45:00 (Vacuum)", a3)

	b2, err := f.GetCellValue(sheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "No schedules for this day.", b2)
}

package client

import (
	"encoding/csv"
	"io"
	"strconv"

	"habitmaster/backend/analytics"
)

// ExportCSV writes the local snapshot as Month,Habit,Day,Status rows,
// one row per habit per calendar day of the active month.
func (s *Session) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Month", "Habit", "Day", "Status"}); err != nil {
		return err
	}

	monthName := ""
	if s.month >= 0 && s.month <= 11 {
		monthName = analytics.MonthNames[s.month]
	}
	days := analytics.DaysInMonth(s.month)

	for _, habit := range s.habits {
		completed := make(map[int]bool, len(habit.CompletedDays))
		for _, d := range habit.CompletedDays {
			completed[d] = true
		}
		for day := 1; day <= days; day++ {
			status := "Missed"
			if completed[day] {
				status = "Completed"
			}
			record := []string{monthName, habit.Name, strconv.Itoa(day), status}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

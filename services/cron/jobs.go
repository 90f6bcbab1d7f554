package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coachdesk/coachdesk-api/services"
)

// OverdueSummary counts enrollments that are past due with money still
// outstanding and records the totals, so the front desk has yesterday's
// follow-up numbers without hitting the reports screen.
func (m *CronManager) OverdueSummary() {
	jobName := "overdue_summary"

	ledgerSvc := services.NewLedgerService(m.db)
	today := time.Now().Format("2006-01-02")

	rows, err := ledgerSvc.DueReport(today)
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	var outstanding float64
	courses := map[string]int{}
	for _, row := range rows {
		outstanding += row.Balance
		courses[row.CourseName]++
	}

	metadata, _ := json.Marshal(map[string]any{
		"as_of":       today,
		"enrollments": len(rows),
		"outstanding": outstanding,
		"by_course":   courses,
	})

	m.logJobComplete(jobName, fmt.Sprintf("%d overdue enrollments", len(rows)), metadata)
}

// PruneJobLogs drops job log rows older than 90 days.
func (m *CronManager) PruneJobLogs() {
	jobName := "prune_job_logs"
	cutoff := time.Now().AddDate(0, 0, -90)

	result := m.db.Exec("DELETE FROM cron_job_logs WHERE started_at < ?", cutoff)
	if result.Error != nil {
		m.logJobError(jobName, result.Error)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("pruned %d rows", result.RowsAffected), nil)
}

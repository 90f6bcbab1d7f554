package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/model"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron *cron.Cron
	db   *gorm.DB
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB) *CronManager {
	return &CronManager{
		cron: cron.New(),
		db:   db,
	}
}

// Start registers and starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	// Daily at 01:00: snapshot overdue enrollments for the morning follow-up list
	if _, err := m.cron.AddFunc("0 1 * * *", func() {
		m.logJobStart("overdue_summary")
		m.OverdueSummary()
	}); err != nil {
		return err
	}

	// Weekly on Sunday 02:00: prune old job logs
	if _, err := m.cron.AddFunc("0 2 * * 0", func() {
		m.logJobStart("prune_job_logs")
		m.PruneJobLogs()
	}); err != nil {
		return err
	}

	m.cron.Start()
	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs and waits for running ones
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

func (m *CronManager) logJobStart(jobName string) {
	entry := model.CronJobLog{
		JobName:   jobName,
		Status:    "started",
		StartedAt: time.Now(),
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] failed to log start of %s: %v", jobName, err)
	}
}

func (m *CronManager) logJobComplete(jobName, message string, metadata []byte) {
	now := time.Now()
	var entry model.CronJobLog
	err := m.db.Where("job_name = ? AND status = ?", jobName, "started").
		Order("started_at DESC").First(&entry).Error
	if err != nil {
		log.Printf("[CRON] no started entry for %s: %v", jobName, err)
		return
	}
	entry.Status = "completed"
	entry.CompletedAt = &now
	entry.Duration = int(now.Sub(entry.StartedAt).Milliseconds())
	entry.Message = message
	entry.Metadata = metadata
	if err := m.db.Save(&entry).Error; err != nil {
		log.Printf("[CRON] failed to log completion of %s: %v", jobName, err)
	}
}

func (m *CronManager) logJobError(jobName string, jobErr error) {
	now := time.Now()
	var entry model.CronJobLog
	err := m.db.Where("job_name = ? AND status = ?", jobName, "started").
		Order("started_at DESC").First(&entry).Error
	if err != nil {
		log.Printf("[CRON] no started entry for %s: %v", jobName, err)
		return
	}
	entry.Status = "failed"
	entry.CompletedAt = &now
	entry.Duration = int(now.Sub(entry.StartedAt).Milliseconds())
	entry.ErrorMsg = jobErr.Error()
	if err := m.db.Save(&entry).Error; err != nil {
		log.Printf("[CRON] failed to log failure of %s: %v", jobName, err)
	}
}

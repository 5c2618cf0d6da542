package CronJobs

import (
	"log"
	"time"

	"TherapyTrack/Export"

	"github.com/go-co-op/gocron"
)

// BackupWorker writes the daily spreadsheet snapshot of the ledger so
// the clinic always has yesterday's state on disk.
type BackupWorker struct {
	DataDir string
	At      string
}

func NewBackupWorker(dataDir, at string) *BackupWorker {
	return &BackupWorker{
		DataDir: dataDir,
		At:      at,
	}
}

// StartBackupCron schedules the nightly export.
func (bw *BackupWorker) StartBackupCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At(bw.At).Do(func() {
		log.Println("Running nightly backup export...")
		if err := bw.RunBackup(); err != nil {
			log.Printf("Error writing backup: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Backup cron job started")

	return scheduler
}

func (bw *BackupWorker) RunBackup() error {
	path, err := Export.Workbook(bw.DataDir)
	if err != nil {
		return err
	}
	log.Printf("Backup written to %s", path)
	return nil
}

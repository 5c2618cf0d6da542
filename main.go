package main

import (
	"log"

	"TherapyTrack/CronJobs"
	"TherapyTrack/Models"
	"TherapyTrack/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{Models.GetEnv("UI_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router)

	backup := CronJobs.NewBackupWorker(Models.DataDir(), Models.GetEnv("BACKUP_TIME", "23:30"))
	scheduler := backup.StartBackupCron()
	_ = scheduler

	if err := router.Run(":" + Models.GetEnv("PORT", "3005")); err != nil {
		log.Fatal(err)
	}
}

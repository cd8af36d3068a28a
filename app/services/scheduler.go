package services

import (
	"database/sql"
	"log"
	"time"

	"siconitcc/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 2:10 AM
			if now.Hour() == 2 && now.Minute() == 10 {
				log.Println("Triggering scheduled tasks [02:10]...")

				n, err := database.DeleteExpiredSessions(db)
				if err != nil {
					log.Printf("Error purging expired sessions: %v", err)
				} else if n > 0 {
					log.Printf("Purged %d expired sessions", n)
				}
			}
		}
	}()
}

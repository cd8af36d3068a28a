package main

import (
	"log"

	"siconitcc/app/config"
	"siconitcc/app/database"
)

func main() {
	log.Println("Running migrations...")

	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migrations completed successfully")
}

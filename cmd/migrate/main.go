package main

import (
	"log"

	"github.com/code-differently/cs-25-2-team6-sub003/app/config"
	"github.com/code-differently/cs-25-2-team6-sub003/app/database"
)

func main() {
	log.Println("Starting migration...")

	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Migration completed successfully")
}

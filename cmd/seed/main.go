// Command seed loads demo data into the configured database.
package main

import (
	"flag"
	"log"

	"foundit/config"
	"foundit/database"
	"foundit/seed"
)

func main() {
	organizers := flag.Int("organizers", 10, "number of organizers to create")
	items := flag.Int("items", 5, "items per organizer")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, *organizers, *items); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done. Every seeded account logs in with password %q", seed.DemoPassword)
}

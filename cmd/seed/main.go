// Command seed populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"pinboard/internal/config"
	"pinboard/internal/database"
	"pinboard/internal/seed"
)

func main() {
	posts := flag.Int("posts", 25, "number of posts to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Posts = *posts

	if err := seed.NewFactory(db, opts).Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d posts with comments and likes", opts.Posts)
}

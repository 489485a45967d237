// Command seed upserts the fixed project and skill catalogues. It is
// safe to run repeatedly; re-runs refresh fields without duplicating
// rows.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/database"
	"github.com/jaiohri/Portfolio/services"

	"github.com/joho/godotenv"
)

func main() {
	seedProjects := flag.Bool("projects", false, "seed only the project catalogue")
	seedSkills := flag.Bool("skills", false, "seed only the skill catalogue")
	flag.Parse()

	// No flag means both
	all := !*seedProjects && !*seedSkills

	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	}

	cfg := config.GetConfig()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to the database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate the database: %v", err)
	}

	cache := services.NewCacheService(cfg)
	seeder := services.NewSeedService(db, cfg, cache)

	if all || *seedProjects {
		config.Info("Adding projects...")
		count, err := seeder.SeedProjects()
		if err != nil {
			log.Fatalf("project seeding failed: %v", err)
		}
		config.Info("Successfully processed %d projects", count)
	}

	if all || *seedSkills {
		config.Info("Adding skills...")
		count, err := seeder.SeedSkills()
		if err != nil {
			log.Fatalf("skill seeding failed: %v", err)
		}
		config.Info("Successfully processed %d skills", count)
	}
}

package main

import (
	"log"
	"os"
	"time"

	"yolcu-backend/internal/model"
	"yolcu-backend/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding hackathons...")

	now := time.Now()
	in := func(days int) time.Time { return now.AddDate(0, 0, days) }
	endAt := func(days int) *time.Time {
		t := in(days)
		return &t
	}

	hackathons := []model.Hackathon{
		{
			Title:       "Yapay Zeka Hackathonu",
			Description: "48 saatte yapay zeka destekli bir uygulama geliştirin.",
			StartDate:   in(7),
			EndDate:     endAt(9),
		},
		{
			Title:       "Web3 ve Blockchain Maratonu",
			Description: "Merkeziyetsiz uygulamalar üzerine takım çalışması.",
			StartDate:   in(14),
			EndDate:     endAt(16),
		},
		{
			Title:       "Mobil Uygulama Sprinti",
			Description: "Bir hafta sonunda fikirden yayınlanabilir mobil uygulamaya.",
			StartDate:   in(21),
			EndDate:     endAt(23),
		},
	}

	for _, h := range hackathons {
		var existing model.Hackathon
		if err := db.Where("title = ?", h.Title).First(&existing).Error; err == nil {
			color.Yellow("Hackathon '%s' already exists, skipping...", h.Title)
			continue
		}

		if err := db.Create(&h).Error; err != nil {
			color.Red("Error creating hackathon '%s': %v", h.Title, err)
		} else {
			color.Green("Created hackathon: %s", h.Title)
		}
	}

	color.Cyan("Seeding completed.")
}

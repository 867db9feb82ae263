package main

import (
	"context"
	"log"
	"os"

	"beautystudio/internal/database"
	"beautystudio/internal/domain"
	"beautystudio/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "studio.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	ctx := context.Background()

	// ================== SERVICE CATALOG ==================
	log.Println("Seeding service catalog...")
	db.Exec("DELETE FROM studio_services")

	services := []domain.StudioService{
		{Name: "Classic manicure", Description: "Shaping, cuticle care and polish.", Price: 1500, DurationMinutes: 60},
		{Name: "Gel manicure", Description: "Long-wear gel polish with LED cure.", Price: 2500, DurationMinutes: 75},
		{Name: "Spa pedicure", Description: "Soak, exfoliation and massage.", Price: 3000, DurationMinutes: 90},
		{Name: "Braiding (medium)", Description: "Box braids, shoulder length.", Price: 4500, DurationMinutes: 180},
		{Name: "Bridal makeup trial", Description: "Full face trial ahead of the event.", Price: 6000, DurationMinutes: 120},
		{Name: "Eyebrow shaping", Description: "Threading and tint.", Price: 800, DurationMinutes: 30},
	}
	for i := range services {
		services[i].Active = true
		if err := db.Create(&services[i]).Error; err != nil {
			log.Fatal("seed service failed:", err)
		}
	}

	// ================== SCHEDULE RULES ==================
	log.Println("Seeding schedule rule documents...")
	rules := repository.NewScheduleRepository(db)

	hours := domain.BusinessHours{
		"monday":    {Enabled: true},
		"tuesday":   {Enabled: true},
		"wednesday": {Enabled: true},
		"thursday":  {Enabled: true},
		"friday":    {Enabled: true},
		"saturday":  {Enabled: false},
		"sunday":    {Enabled: true},
	}
	if err := rules.Save(ctx, repository.KeyBusinessHours, hours); err != nil {
		log.Fatal("seed business hours failed:", err)
	}

	templates := domain.SlotTemplates{
		"weekday": {
			{Hour: 9, Minute: 30, Label: "Morning"},
			{Hour: 11, Minute: 30, Label: "Late morning"},
			{Hour: 14, Minute: 0, Label: "Afternoon"},
			{Hour: 16, Minute: 0, Label: "Late afternoon"},
		},
		"sunday": {
			{Hour: 11, Minute: 0, Label: "Morning"},
			{Hour: 13, Minute: 30, Label: "Afternoon"},
			{Hour: 15, Minute: 30, Label: "Late afternoon"},
		},
	}
	if err := rules.Save(ctx, repository.KeySlotTemplates, templates); err != nil {
		log.Fatal("seed slot templates failed:", err)
	}

	policies := repository.BookingPolicies{
		MinAdvanceNoticeHours:   24,
		CancellationPolicyHours: 48,
	}
	if err := rules.Save(ctx, repository.KeyBookingPolicies, policies); err != nil {
		log.Fatal("seed booking policies failed:", err)
	}

	if err := rules.Save(ctx, repository.KeyFullyBookedDates, []string{}); err != nil {
		log.Fatal("seed blackout list failed:", err)
	}

	log.Println("Seed completed.")
	log.Printf("Services: %d, business timezone: %s", len(services), domain.BusinessTimezone)
}

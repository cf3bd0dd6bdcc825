package jobs

import (
	"context"
	"log"
	"time"

	"ArogyaMCVK/config"
	"ArogyaMCVK/models"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Appointment Digest...")
		RunAppointmentDigest()
	})

	c.Start()
}

// RunAppointmentDigest logs every patient record whose appointment falls
// on the current day.
func RunAppointmentDigest() {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	filter := bson.M{"dateOfAppointment": bson.M{"$gte": start, "$lt": end}}

	patients := []models.Patient{}
	coll := config.OpenCollection(config.PatientCollection)
	if err := config.FindAll(context.Background(), coll, filter, &patients); err != nil {
		log.Println("Error fetching today's appointments:", err)
		return
	}

	log.Println("Appointments today:", len(patients))
	for _, p := range patients {
		if p.DoctorName != "" {
			log.Printf("  %s with %s", p.Name, p.DoctorName)
		} else {
			log.Printf("  %s", p.Name)
		}
	}
}

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/database"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "turf.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("migrations failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM feedbacks")
	db.Exec("DELETE FROM chat_messages")
	db.Exec("DELETE FROM turf_chat_messages")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM dynamic_pricings")
	db.Exec("DELETE FROM turf_slots")
	db.Exec("DELETE FROM turfs")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@spoto.in",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Platform Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@spoto.in / admin123")

	players := []domain.User{}
	playerEmails := []string{"arjun@gmail.com", "rahul@gmail.com", "fathima@gmail.com"}
	for i, email := range playerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("player123"), bcrypt.DefaultCost)
		p := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RolePlayer,
			Name:         fmt.Sprintf("Player %d", i+1),
			Phone:        fmt.Sprintf("+91 98765 432%02d", i+10),
		}
		db.Create(&p)
		players = append(players, p)
	}

	owners := []domain.User{}
	ownerEmails := []string{"sanjay@greenfield.in", "meera@arenaclub.in"}
	for i, email := range ownerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		o := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleOwner,
			Name:         fmt.Sprintf("Owner %d", i+1),
			Phone:        fmt.Sprintf("+91 99887 765%02d", i+30),
		}
		db.Create(&o)
		owners = append(owners, o)
	}

	log.Println("Creating turfs and slots...")

	turfs := []domain.Turf{
		{
			OwnerID:      owners[0].ID,
			Name:         "Greenfield Arena",
			Location:     "Kochi",
			Address:      "NH 66 Bypass, Edappally, Kochi",
			PricePerHour: 1000,
			Amenities:    "Floodlights,Parking,Changing Room",
		},
		{
			OwnerID:      owners[0].ID,
			Name:         "Greenfield 5s",
			Location:     "Kochi",
			Address:      "Palarivattom, Kochi",
			PricePerHour: 800,
			Amenities:    "Floodlights,Drinking Water",
		},
		{
			OwnerID:      owners[1].ID,
			Name:         "Arena Club Turf",
			Location:     "Kozhikode",
			Address:      "Mavoor Road, Kozhikode",
			PricePerHour: 1200,
			Amenities:    "Floodlights,Parking,Cafeteria",
		},
	}
	for i := range turfs {
		db.Create(&turfs[i])
	}

	windows := [][2]string{
		{"06:00", "07:00"},
		{"07:00", "08:00"},
		{"17:00", "18:00"},
		{"18:00", "19:00"},
		{"19:00", "20:00"},
		{"20:00", "22:00"},
	}
	for _, t := range turfs {
		for _, w := range windows {
			db.Create(&domain.TurfSlot{
				TurfID:    t.ID,
				StartTime: w[0],
				EndTime:   w[1],
				IsActive:  true,
			})
		}
	}

	log.Println("Creating sample bookings...")

	tomorrow := domain.DateOnly(time.Now().AddDate(0, 0, 1))
	var slot domain.TurfSlot
	db.Where("turf_id = ? AND start_time = ?", turfs[0].ID, "18:00").First(&slot)

	confirmed := domain.Booking{
		UserID:        players[0].ID,
		TurfID:        turfs[0].ID,
		SlotID:        &slot.ID,
		Date:          tomorrow,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		DurationHours: 1,
		TotalPrice:    turfs[0].PricePerHour,
		BookingStatus: domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
	}
	db.Create(&confirmed)

	pending := domain.Booking{
		UserID:        players[1].ID,
		TurfID:        turfs[0].ID,
		SlotID:        &slot.ID,
		Date:          tomorrow,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		DurationHours: 1,
		TotalPrice:    turfs[0].PricePerHour,
		BookingStatus: domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
	}
	db.Create(&pending)

	db.Create(&domain.Feedback{
		UserID:  players[0].ID,
		TurfID:  turfs[0].ID,
		Rating:  5,
		Comment: "Great surface and lighting",
	})

	log.Println("Seed completed.")
	log.Println("Players: arjun@gmail.com / player123 (and friends)")
	log.Println("Owners:  sanjay@greenfield.in / owner123, meera@arenaclub.in / owner123")
}

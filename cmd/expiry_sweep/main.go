package main

import (
	"log"
	"os"
	"time"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/database"
)

// One-shot backstop for the in-process payment-window timers: rejects any
// booking that has sat in confirm_after_payment past its deadline. Safe to
// run from cron alongside a live API instance.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	window := 5 * time.Minute
	if v := os.Getenv("PAYMENT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid PAYMENT_WINDOW %q: %v", v, err)
		}
		window = d
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cutoff := time.Now().UTC().Add(-window)
	res := db.Exec(
		`UPDATE bookings
		 SET booking_status = 'rejected', updated_at = ?
		 WHERE booking_status = 'confirm_after_payment'
		   AND payment_status <> 'paid'
		   AND approved_at < ?`,
		time.Now().UTC(), cutoff)
	if res.Error != nil {
		log.Fatalf("expiry sweep failed: %v", res.Error)
	}

	log.Printf("expiry sweep completed: expired=%d", res.RowsAffected)
}

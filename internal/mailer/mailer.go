// Package mailer sends transactional booking emails over SMTP. Delivery is
// fire-and-forget: failures are logged, never surfaced to the request path.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"time"
)

type Mailer struct {
	host     string
	port     string
	from     string
	password string
	enabled  bool
}

func New(host, port, from, password string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		enabled:  host != "" && from != "",
	}
}

func (m *Mailer) Enabled() bool { return m.enabled }

// Send delivers asynchronously. A nil or unconfigured mailer is a no-op so
// callers never have to guard.
func (m *Mailer) Send(to, subject, body string) {
	if m == nil || !m.enabled {
		return
	}
	go func() {
		msg := []byte(fmt.Sprintf(
			"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
			m.from, to, subject, body))
		auth := smtp.PlainAuth("", m.from, m.password, m.host)
		addr := m.host + ":" + m.port
		if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
			log.Printf("mailer: send to %s failed: %v", to, err)
		}
	}()
}

func (m *Mailer) BookingApproved(to, turfName string, advance float64, window time.Duration) {
	m.Send(to,
		"Booking approved: complete your payment",
		fmt.Sprintf("Your booking for %s has been approved.\nPay the advance of %.2f within %s to confirm your slot.", turfName, advance, formatWindow(window)))
}

func formatWindow(w time.Duration) string {
	mins := int(w.Round(time.Minute) / time.Minute)
	if mins <= 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", mins)
}

func (m *Mailer) BookingConfirmed(to, turfName string) {
	m.Send(to,
		"Booking confirmed",
		fmt.Sprintf("Payment received. Your booking for %s is confirmed. See you on the ground!", turfName))
}

func (m *Mailer) BookingRejected(to, turfName, reason string) {
	m.Send(to,
		"Booking update",
		fmt.Sprintf("Your booking for %s was not confirmed: %s", turfName, reason))
}

// Package notify delivers best-effort booking emails over SMTP. Delivery is a
// single synchronous attempt with no retry; callers decide what to do with a
// failure (the dispatcher logs and drops it).
package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/care-io/booking-system/internal/core/ports"
)

// Config captures the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer implements ports.Notifier over an SMTP relay.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendBookingNotice renders and sends the invoice email for a booking. The
// SMTP client has no context support; cancellation is bounded by the relay's
// own dial and write timeouts.
func (m *Mailer) SendBookingNotice(_ context.Context, notice ports.BookingNotice) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Care.IO")
	msg.SetHeader("To", notice.UserEmail)
	msg.SetHeader("Subject", subjectFor(notice))
	msg.SetBody("text/html", renderInvoice(notice))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send booking notice: %w", err)
	}
	return nil
}

func subjectFor(notice ports.BookingNotice) string {
	return fmt.Sprintf("Booking %s - Care.IO", notice.Status)
}

func renderInvoice(n ports.BookingNotice) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Care.IO Booking %s</h2>
  <p>Dear Valued Customer,</p>
  <p>Thank you for choosing Care.IO. Here are your booking details.</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 12px;">
    <p><strong>Service:</strong> %s</p>
    <p><strong>Duration:</strong> %d %s(s)</p>
    <p><strong>Location:</strong> %s</p>
    <p><strong>Total Cost:</strong> &#2547;%d</p>
  </div>
  <p>Our care provider will reach out to you shortly.</p>
  <hr style="border: none; border-top: 1px solid #e5e7eb;" />
  <p style="font-size: 12px; color: #6b7280;">
    This is an automated email. Please do not reply directly to this email.
  </p>
</div>`, n.Status, n.Service, n.Duration, n.Unit, n.Division, n.TotalCost)
}

package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Client is the outgoing mail client used for password resets.
type Client struct {
	dialer *gomail.Dialer
}

func NewClient(dialer *gomail.Dialer) *Client {
	return &Client{dialer: dialer}
}

// SendPasswordReset mails the generated replacement password to the member.
func (c *Client) SendPasswordReset(to, name, newPassword string) error {
	msg := gomail.NewMessage()

	domain := viper.GetString("service.smtp.domain")

	msg.SetHeader("Message-ID", generateMessageID(domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", viper.GetString("service.smtp.email"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password reset")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour password has been reset. Your new password is:\n\n%s\n\nPlease change it after logging in.",
		name, newPassword,
	))

	return c.dialer.DialAndSend(msg)
}

func generateMessageID(domain string) string {
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}

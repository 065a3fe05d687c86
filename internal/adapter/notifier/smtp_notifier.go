// Package notifier delivers post-settlement notices to withdrawal owners.
package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"pix-withdrawal-service/config"
	"pix-withdrawal-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// sendMailFunc matches smtp.SendMail, swapped in tests.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier implements ports.SettlementNotifier over plain SMTP.
// When disabled it drops notices silently; the engine treats notification
// as best-effort either way.
type SMTPNotifier struct {
	cfg      config.SMTPConfig
	sendMail sendMailFunc
	log      zerolog.Logger
}

// NewSMTPNotifier creates an SMTP-backed settlement notifier.
func NewSMTPNotifier(cfg config.SMTPConfig, log zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:      cfg,
		sendMail: smtp.SendMail,
		log:      log.With().Str("component", "smtp_notifier").Logger(),
	}
}

// NotifySettlement sends the settlement notice email.
func (n *SMTPNotifier) NotifySettlement(ctx context.Context, notice ports.SettlementNotification) error {
	if !n.cfg.Enabled {
		n.log.Debug().
			Str("withdrawal_id", notice.WithdrawalID).
			Str("recipient", notice.Email).
			Msg("notifier disabled, dropping settlement notice")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(n.cfg.From, notice)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := n.sendMail(n.cfg.Addr(), auth, n.cfg.From, []string{notice.Email}, msg); err != nil {
		return fmt.Errorf("send settlement notice: %w", err)
	}

	n.log.Info().
		Str("withdrawal_id", notice.WithdrawalID).
		Str("recipient", notice.Email).
		Msg("settlement notice sent")
	return nil
}

func buildMessage(from string, notice ports.SettlementNotification) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", notice.Email)
	fmt.Fprintf(&b, "Subject: Withdrawal %s processed\r\n", notice.WithdrawalID)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Your PIX withdrawal of %s was processed at %s.\r\n",
		notice.Amount.StringFixed(2), notice.ProcessedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Destination: %s key %s\r\n", notice.PixType, notice.PixKey)
	return []byte(b.String())
}

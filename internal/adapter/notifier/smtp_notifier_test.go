package notifier

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"pix-withdrawal-service/config"
	"pix-withdrawal-service/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotice() ports.SettlementNotification {
	return ports.SettlementNotification{
		Email:        "usuario@email.com",
		WithdrawalID: "b2c3d4e5-0000-0000-0000-000000000001",
		Amount:       decimal.RequireFromString("60.00"),
		PixType:      "email",
		PixKey:       "usuario@email.com",
		ProcessedAt:  time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotifySettlement_Disabled_NoSend(t *testing.T) {
	n := NewSMTPNotifier(config.SMTPConfig{Enabled: false}, zerolog.Nop())
	called := false
	n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	require.NoError(t, n.NotifySettlement(context.Background(), testNotice()))
	assert.False(t, called, "disabled notifier must not reach the SMTP server")
}

func TestNotifySettlement_SendsToRecipient(t *testing.T) {
	cfg := config.SMTPConfig{
		Enabled: true,
		Host:    "mail.internal",
		Port:    587,
		From:    "no-reply@bank.example",
	}
	n := NewSMTPNotifier(cfg, zerolog.Nop())

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	n.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	require.NoError(t, n.NotifySettlement(context.Background(), testNotice()))

	assert.Equal(t, "mail.internal:587", gotAddr)
	assert.Equal(t, "no-reply@bank.example", gotFrom)
	assert.Equal(t, []string{"usuario@email.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "60.00")
	assert.Contains(t, string(gotMsg), "b2c3d4e5-0000-0000-0000-000000000001")
}

func TestNotifySettlement_SendFailure(t *testing.T) {
	n := NewSMTPNotifier(config.SMTPConfig{Enabled: true, Host: "mail.internal", Port: 25}, zerolog.Nop())
	n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := n.NotifySettlement(context.Background(), testNotice())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send settlement notice")
}

func TestNotifySettlement_CancelledContext(t *testing.T) {
	n := NewSMTPNotifier(config.SMTPConfig{Enabled: true}, zerolog.Nop())
	n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("must not send on a cancelled context")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, n.NotifySettlement(ctx, testNotice()), context.Canceled)
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/mail"
)

// NotificationService turns domain events into outbound mail. Delivery is
// fire-and-forget: each message goes out on its own goroutine, the HTTP
// response never waits for it, and failures are logged but not retried.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventVerificationResent, n.handleVerificationResent)
	n.dispatcher.Subscribe(events.EventOrderStatusChanged, n.handleOrderStatusChanged)
	n.dispatcher.Subscribe(events.EventPaymentRecorded, n.handlePaymentRecorded)
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserRegisteredPayload)
	if !ok {
		return nil
	}
	n.sendAsync(payload.Email, "Verify Your Email",
		fmt.Sprintf("Your verification code is: %s", payload.VerificationCode))
	return nil
}

func (n *NotificationService) handleVerificationResent(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.VerificationResentPayload)
	if !ok {
		return nil
	}
	n.sendAsync(payload.Email, "Resend Email Verification",
		fmt.Sprintf("Your new verification code is: %s", payload.VerificationCode))
	return nil
}

func (n *NotificationService) handleOrderStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("OrderStatusChanged", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handlePaymentRecorded(_ context.Context, event events.Event) error {
	n.logger.Info("PaymentRecorded", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) sendAsync(to, subject, body string) {
	go func() {
		if err := n.mailer.Send(to, subject, body); err != nil {
			n.logger.Error("mail delivery failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err))
		}
	}()
}

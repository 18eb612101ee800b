package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/kafka"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
	TypeGuestCheckedIn   = "guest.checked_in"
	TypeGuestCheckedOut  = "guest.checked_out"
)

// BookingEvent is the lifecycle notification emitted on the booking
// events topic. Keyed by booking ID so per-booking ordering holds.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	RoomNumber string    `json:"room_number"`
	UserID     string    `json:"user_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"event.type":       event.Type,
		"event.booking_id": event.BookingID,
	})

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	err = p.client.SendMessages(ctx, p.cfg.Kafka.Topics.BookingEvents, message)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

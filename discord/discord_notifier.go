package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hanksha/turf-booking-backend/booking"
)

const (
	colorGreen  = 0x2ecc71
	colorRed    = 0xe74c3c
	colorGrey   = 0x95a5a6
	colorOrange = 0xe67e22
)

// Notifier posts booking lifecycle events to a Discord channel.
type Notifier struct {
	client    DiscordClient
	channelID string
}

func NewNotifier(client DiscordClient, channelID string) *Notifier {
	return &Notifier{client: client, channelID: channelID}
}

func (n *Notifier) Publish(ctx context.Context, event booking.Event) error {
	embed, ok := embedFor(event)

	if !ok || n.channelID == "" {
		return nil
	}

	return n.client.SendMessage(ctx, n.channelID, Message{Embeds: []Embed{embed}})
}

func embedFor(event booking.Event) (Embed, bool) {
	embed := Embed{
		Fields:    bookingFields(event),
		Timestamp: event.OccurredAt.UTC().Format(time.RFC3339),
	}

	switch event.Type {
	case booking.EventConfirmed:
		embed.Title = "Booking confirmed"
		embed.Color = colorGreen
	case booking.EventCancelled:
		embed.Title = "Booking cancelled"
		embed.Color = colorRed
		embed.Fields = append(embed.Fields,
			EmbedField{Name: "Cancellation charge", Value: fmt.Sprint(event.CancellationCharge), Inline: true},
			EmbedField{Name: "Refund due", Value: fmt.Sprint(event.RefundDue), Inline: true},
		)
	case booking.EventExpired:
		embed.Title = "Bookings completed"
		embed.Color = colorGrey
	case booking.EventFailed:
		embed.Title = "Reservation released"
		embed.Color = colorOrange
		if event.Reason != "" {
			embed.Description = event.Reason
		}
	case booking.EventPaymentRequested:
		return Embed{}, false
	default:
		return Embed{}, false
	}

	return embed, true
}

func bookingFields(event booking.Event) []EmbedField {
	fields := []EmbedField{}

	if event.BatchID != "" {
		fields = append(fields, EmbedField{Name: "Batch", Value: event.BatchID, Inline: true})
	}

	if event.UserID != "" {
		fields = append(fields, EmbedField{Name: "Player", Value: fmt.Sprintf("<@%s>", event.UserID), Inline: true})
	}

	windows := make([]string, 0, len(event.Bookings))
	for _, b := range event.Bookings {
		windows = append(windows, fmt.Sprintf("%v %v-%v", b.Date, b.StartTime, b.EndTime))
	}

	if len(windows) > 0 {
		fields = append(fields, EmbedField{Name: "Slots", Value: strings.Join(windows, "\n")})
	}

	return fields
}

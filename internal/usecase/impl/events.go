package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent sends a committed state change to the event publisher. Failures are
// logged and swallowed; the caller's write already succeeded.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.LibraryEvent) {
	if publisher == nil {
		return
	}

	event.ID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event",
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)
	}
}

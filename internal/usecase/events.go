package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

// emit publishes an audit event. Publishing never fails the triggering
// operation; failures are logged and dropped.
func emit(ctx context.Context, signal EventPublisher, eventType, electionID, subjectID string) {
	if signal == nil {
		return
	}
	event := domain.Event{
		Type:       eventType,
		ElectionID: electionID,
		SubjectID:  subjectID,
		Timestamp:  time.Now(),
	}
	if err := signal.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			slog.String("type", eventType),
			slog.String("error", err.Error()),
		)
	}
}

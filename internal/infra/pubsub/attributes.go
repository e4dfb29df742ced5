package pubsub

import "shelf/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.LibraryEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID,
		"event_type": event.Type,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}
	if event.SpotifyUserID != "" {
		attributes["spotify_user_id"] = event.SpotifyUserID
	}

	return attributes
}

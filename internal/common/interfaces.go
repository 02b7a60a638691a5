package common

import (
	"context"
)

// ObjectStore is the binary storage collaborator. Put stores raw bytes,
// PutEncoded stores base64-encoded content, both returning a stable content
// reference that ends up in a media message's content field.
type ObjectStore interface {
	Put(ctx context.Context, data []byte, name string) (string, error)
	PutEncoded(ctx context.Context, encoded, name, ext string) (string, error)
	Delete(ctx context.Context, ref string) error
}

// Broadcaster is the room-based fan-out transport. Rooms are keyed by
// conversation id; delivery is best-effort.
type Broadcaster interface {
	Broadcast(roomID, event string, payload interface{})
}

package common

import "strings"

// MessageKind is the kind of a chat message.
type MessageKind string

const (
	KindText   MessageKind = "TEXT"
	KindImage  MessageKind = "IMAGE"
	KindVideo  MessageKind = "VIDEO"
	KindFile   MessageKind = "FILE"
	KindNotify MessageKind = "NOTIFY"
	KindVote   MessageKind = "VOTE"
)

// String returns the string representation
func (k MessageKind) String() string {
	return string(k)
}

// IsValid checks if the message kind is one of the known kinds
func (k MessageKind) IsValid() bool {
	switch k {
	case KindText, KindImage, KindVideo, KindFile, KindNotify, KindVote:
		return true
	}
	return false
}

// IsMedia reports whether the kind is stored in the object store
// (image, video or generic file).
func (k MessageKind) IsMedia() bool {
	return k == KindImage || k == KindVideo || k == KindFile
}

// DetectMediaKind maps a MIME type onto a media message kind. Anything that
// is neither image/* nor video/* is treated as a generic file attachment.
func DetectMediaKind(mimeType string) MessageKind {
	lower := strings.ToLower(mimeType)
	if strings.HasPrefix(lower, "image/") {
		return KindImage
	}
	if strings.HasPrefix(lower, "video/") {
		return KindVideo
	}
	return KindFile
}

// Reaction types are small integers chosen by the client.
const (
	ReactionMin = 1
	ReactionMax = 6
)

// ValidReaction reports whether t is inside the allowed reaction range.
func ValidReaction(t int) bool {
	return t >= ReactionMin && t <= ReactionMax
}

package models

// ChannelUpdateChange enumerates the mutation kinds announced on the live
// update channel.
type ChannelUpdateChange int

const (
	ChannelUpdateCreate ChannelUpdateChange = iota
	ChannelUpdateUpdate
	ChannelUpdateDelete
)

// ChannelUpdate is the payload of a single live-update notification.
type ChannelUpdate struct {
	UUID   string              `json:"uuid"`
	Change ChannelUpdateChange `json:"change"`

	// AccessTokenHash identifies the session that caused the mutation, as a
	// SHA-256 hex digest of its access token. A listener whose own token
	// hashes to the same value is seeing its own write echoed back and must
	// ignore it.
	AccessTokenHash string `json:"access_token_hash"`
}

// ChannelMessage is one frame received from the live update channel.
// Frames with Type "ping" or without a Message payload are heartbeats and
// carry no update.
type ChannelMessage struct {
	Type    string         `json:"type"`
	Message *ChannelUpdate `json:"message,omitempty"`
}

// IsHeartbeat reports whether the frame carries no applicable update.
func (m ChannelMessage) IsHeartbeat() bool {
	return m.Type == "ping" || m.Message == nil
}

package socket

// ChannelRequest replaces the set of channels a connection listens on
type ChannelRequest struct {
	Channels []string `json:"channels"`
}

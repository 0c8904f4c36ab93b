package core

// Client is the hub-owned record for one live connection. The hub is the
// only goroutine that reads or mutates it after registration; the transport
// layer only drains Events.
type Client struct {
	ID     ClientID
	Events chan *Event

	username string
	typing   bool
}

// NewClient constructs a client record with a bounded outbound channel.
func NewClient(id ClientID, buffer int) *Client {
	if buffer <= 0 {
		buffer = 32
	}
	return &Client{
		ID:     id,
		Events: make(chan *Event, buffer),
	}
}

// send enqueues an event on the client's outbound channel. It never blocks:
// if the receiver has stalled or is gone the event is dropped and
// ErrChannelClosed is returned, so one dead connection cannot stall the hub.
func (c *Client) send(ev *Event) error {
	select {
	case c.Events <- ev:
		return nil
	default:
		return ErrChannelClosed
	}
}

// HasUsername reports whether the client has completed username setup.
func (c *Client) HasUsername() bool {
	return c.username != ""
}

// DisplayName returns the username, or "Unknown" before setup. Display only,
// never used for lookups.
func (c *Client) DisplayName() string {
	if c.username == "" {
		return "Unknown"
	}
	return c.username
}

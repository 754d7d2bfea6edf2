package room

import (
	"github.com/gorilla/websocket"
)

// Client is a push subscriber connected over a websocket.
// The HTTP layer owns the read/write loops; Client only carries the channels
// between the Floor and those loops.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	send  chan *Message
	close chan string
}

// NewClient returns a new client wrapping the connection
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		Conn:  conn,
		send:  make(chan *Message, 256),
		close: make(chan string, 1),
	}
}

// Send queues a message for the write loop; false means the buffer is full
func (c *Client) Send(msg *Message) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// CloseWith asks the write loop to close the connection with a reason
func (c *Client) CloseWith(reason string) {
	select {
	case c.close <- reason:
	default:
	}
}

// SendChan returns the channel the write loop drains
func (c *Client) SendChan() <-chan *Message {
	return c.send
}

// CloseChan signals the write loop to send a close frame
func (c *Client) CloseChan() <-chan string {
	return c.close
}

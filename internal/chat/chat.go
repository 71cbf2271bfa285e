// Package chat backs the /api/chat endpoint. The assistant is a stub: it
// acknowledges the message and echoes it back. Swapping in a real model
// means replacing Reply.
package chat

import "fmt"

type Message struct {
	Message string `json:"message"`
}

type Reply struct {
	Response string `json:"response"`
}

// Respond produces the assistant's reply for an incoming message.
func Respond(m Message) Reply {
	return Reply{Response: fmt.Sprintf("Hello! I received your message: %q", m.Message)}
}

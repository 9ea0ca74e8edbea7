package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/scoutfriends/scout-server/internal/protocol"
)

// MockClient is a testify mock of types.ClientInterface.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetLobby() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetLobby(code string) {
	m.Called(code)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient records everything sent to it. Use it when a test only
// needs to inspect traffic, not assert call patterns.
type SimpleClient struct {
	ID        string
	LobbyCode string
	Messages  []*protocol.Message
}

func (c *SimpleClient) GetID() string                     { return c.ID }
func (c *SimpleClient) GetLobby() string                  { return c.LobbyCode }
func (c *SimpleClient) SetLobby(code string)              { c.LobbyCode = code }
func (c *SimpleClient) SendMessage(msg *protocol.Message) { c.Messages = append(c.Messages, msg) }
func (c *SimpleClient) Close()                            {}

// MessagesOfType filters the recorded messages by type.
func (c *SimpleClient) MessagesOfType(t protocol.MessageType) []*protocol.Message {
	var out []*protocol.Message
	for _, msg := range c.Messages {
		if msg.Type == t {
			out = append(out, msg)
		}
	}
	return out
}

// LastMessage returns the most recent message, nil when none.
func (c *SimpleClient) LastMessage() *protocol.Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// Reset clears the recorded messages.
func (c *SimpleClient) Reset() {
	c.Messages = nil
}

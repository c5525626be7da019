package chat

import (
	"math/rand"
	"strings"
	"time"

	"github.com/lixenwraith/termfolio/engine"
	"github.com/lixenwraith/termfolio/parameter"
)

// Role identifies a message author
type Role uint8

const (
	RoleUser Role = iota
	RoleAssistant
)

func (r Role) String() string {
	if r == RoleAssistant {
		return "assistant"
	}
	return "user"
}

// Message is one chat entry
type Message struct {
	ID      uint64
	Role    Role
	Content string
	Time    time.Time
}

// Scheduler delays replies, satisfied by *engine.Loop
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) engine.TimerID
	CancelTimer(id engine.TimerID) bool
}

// Conversation is a chat transcript with a simulated thinking delay before each reply
// Not safe for concurrent use, all calls happen on the scheduler goroutine
type Conversation struct {
	responder *Responder
	sched     Scheduler
	rng       *rand.Rand

	messages []Message
	nextID   uint64
	pending  map[engine.TimerID]struct{}

	onReply func(Message)
}

// NewConversation starts a transcript holding the welcome message
func NewConversation(responder *Responder, sched Scheduler, rng *rand.Rand) *Conversation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Conversation{
		responder: responder,
		sched:     sched,
		rng:       rng,
		pending:   make(map[engine.TimerID]struct{}),
	}
	c.append(RoleAssistant, WelcomeReply)
	return c
}

// OnReply sets the callback invoked after each assistant reply lands
func (c *Conversation) OnReply(fn func(Message)) {
	c.onReply = fn
}

// Send records input as a user message and schedules the reply
// Returns false for blank input
func (c *Conversation) Send(input string) (Message, bool) {
	if strings.TrimSpace(input) == "" {
		return Message{}, false
	}
	msg := c.append(RoleUser, input)

	var id engine.TimerID
	id = c.sched.AfterFunc(c.thinkDelay(), func() {
		delete(c.pending, id)
		reply := c.append(RoleAssistant, c.responder.Reply(input))
		if c.onReply != nil {
			c.onReply(reply)
		}
	})
	c.pending[id] = struct{}{}
	return msg, true
}

// thinkDelay returns a delay in [ChatThinkMin, ChatThinkMin+ChatThinkJitter)
func (c *Conversation) thinkDelay() time.Duration {
	return parameter.ChatThinkMin + time.Duration(c.rng.Int63n(int64(parameter.ChatThinkJitter)))
}

func (c *Conversation) append(role Role, content string) Message {
	c.nextID++
	m := Message{ID: c.nextID, Role: role, Content: content, Time: c.sched.Now()}
	c.messages = append(c.messages, m)
	return m
}

// Typing reports whether any reply is still pending
func (c *Conversation) Typing() bool {
	return len(c.pending) > 0
}

// Messages returns the transcript, callers must not modify it
func (c *Conversation) Messages() []Message {
	return c.messages
}

// Close cancels every pending reply
func (c *Conversation) Close() {
	for id := range c.pending {
		c.sched.CancelTimer(id)
	}
	clear(c.pending)
}

package chat

import (
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Responder maps free text to a canned reply
// Safe for concurrent use
type Responder struct {
	table *Table

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder creates a responder over table, rng nil seeds from the clock
func NewResponder(table *Table, rng *rand.Rand) *Responder {
	if table == nil {
		table = DefaultTable()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{table: table, rng: rng}
}

// Table returns the topic table
func (r *Responder) Table() *Table {
	return r.table
}

// Kind classifies which rule produced a reply
type Kind uint8

const (
	KindTopic Kind = iota
	KindGreeting
	KindThanks
	KindFallback
)

func (k Kind) String() string {
	switch k {
	case KindTopic:
		return "topic"
	case KindGreeting:
		return "greeting"
	case KindThanks:
		return "thanks"
	default:
		return "fallback"
	}
}

// Answer is a reply with the rule that selected it, Topic is set for KindTopic
type Answer struct {
	Text  string
	Kind  Kind
	Topic string
}

// Answer picks the response for message
// Order: first matching topic (random reply), greeting, thanks, keyword suggestions
func (r *Responder) Answer(message string) Answer {
	if topic, ok := r.table.Match(message); ok {
		r.mu.Lock()
		i := r.rng.Intn(len(topic.Replies))
		r.mu.Unlock()
		return Answer{Text: topic.Replies[i], Kind: KindTopic, Topic: topic.Keyword}
	}

	lower := strings.ToLower(message)
	if strings.Contains(lower, "hello") || hasWord(lower, "hi") {
		return Answer{Text: GreetingReply, Kind: KindGreeting}
	}
	if strings.Contains(lower, "thank") {
		return Answer{Text: ThanksReply, Kind: KindThanks}
	}
	return Answer{Text: r.Suggestion(), Kind: KindFallback}
}

// Reply returns the text of Answer
func (r *Responder) Reply(message string) string {
	return r.Answer(message).Text
}

// Suggestion returns the fallback reply listing the leading keywords
func (r *Responder) Suggestion() string {
	kws := r.table.Keywords()
	if len(kws) > suggestionCount {
		kws = kws[:suggestionCount]
	}
	return "That's a great question! Try asking about: " + strings.Join(kws, ", ") + ". What interests you most?"
}

// hasWord reports whether word occurs in s delimited by non-letters
func hasWord(s, word string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, f := range fields {
		if f == word {
			return true
		}
	}
	return false
}

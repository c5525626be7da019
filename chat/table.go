package chat

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Topic is one keyword and the canned replies it selects from
type Topic struct {
	Keyword string   `toml:"keyword" json:"keyword"`
	Replies []string `toml:"replies" json:"replies"`
}

// topicFile is the on-disk layout: an array of [[topic]] tables
type topicFile struct {
	Topic []Topic `toml:"topic"`
}

var (
	ErrEmptyTable   = errors.New("topic table is empty")
	ErrEmptyKeyword = errors.New("topic keyword is empty")
	ErrNoReplies    = errors.New("topic has no replies")
)

// Table is an immutable ordered topic list, earlier topics win on overlap
type Table struct {
	topics []Topic
}

// NewTable validates and copies topics, keywords are lowercased for matching
func NewTable(topics []Topic) (*Table, error) {
	if len(topics) == 0 {
		return nil, ErrEmptyTable
	}

	out := make([]Topic, len(topics))
	for i, t := range topics {
		kw := strings.ToLower(strings.TrimSpace(t.Keyword))
		if kw == "" {
			return nil, fmt.Errorf("topic %d: %w", i, ErrEmptyKeyword)
		}
		if len(t.Replies) == 0 {
			return nil, fmt.Errorf("topic %q: %w", kw, ErrNoReplies)
		}
		out[i] = Topic{Keyword: kw, Replies: append([]string(nil), t.Replies...)}
	}
	return &Table{topics: out}, nil
}

// DefaultTable returns the table built from DefaultTopics
func DefaultTable() *Table {
	t, err := NewTable(DefaultTopics())
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTopics decodes a TOML topic document
func ParseTopics(data []byte) ([]Topic, error) {
	var f topicFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse topics: %w", err)
	}
	return f.Topic, nil
}

// LoadTable reads a TOML topic file and builds a table from it
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topics: %w", err)
	}
	topics, err := ParseTopics(data)
	if err != nil {
		return nil, err
	}
	return NewTable(topics)
}

// Match returns the first topic whose keyword appears in the lowercased message
func (t *Table) Match(message string) (Topic, bool) {
	lower := strings.ToLower(message)
	for _, topic := range t.topics {
		if strings.Contains(lower, topic.Keyword) {
			return topic, true
		}
	}
	return Topic{}, false
}

// Keywords returns the topic keywords in table order
func (t *Table) Keywords() []string {
	kws := make([]string, len(t.topics))
	for i, topic := range t.topics {
		kws[i] = topic.Keyword
	}
	return kws
}

// Len returns the number of topics
func (t *Table) Len() int {
	return len(t.topics)
}

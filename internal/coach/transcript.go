package coach

import (
	"github.com/gios-blog/runcoach/internal/gemini"
	"github.com/gios-blog/runcoach/internal/intake"
)

// Role of a transcript entry
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Entry is one prior turn as held by the client
type Entry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is the body of POST /
type Request struct {
	UserData    *intake.Record `json:"userData"`
	CurrentDate string         `json:"currentDate"`
	Question    string         `json:"question"`
	History     []Entry        `json:"history"`
}

// Reply is the success body of POST /
type Reply struct {
	Reply string `json:"reply"`
}

// Contents converts history plus the new question into upstream contents.
// Entries are forwarded in order with their role and text untouched. When
// limit > 0 only the last limit entries are kept, and a model entry left at
// the front by the cut is dropped so the kept history opens on a question.
func Contents(history []Entry, question string, limit int) []gemini.Content {
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
		for len(history) > 0 && history[0].Role == RoleModel {
			history = history[1:]
		}
	}
	out := make([]gemini.Content, 0, len(history)+1)
	for _, e := range history {
		out = append(out, gemini.NewText(string(e.Role), e.Content))
	}
	return append(out, gemini.NewText(gemini.RoleUser, question))
}

// Conversation is the client-held transcript. It is what the page script
// keeps in chatHistory: only completed turns are recorded.
type Conversation struct {
	Record  intake.Record
	history []Entry
}

// Next builds the request for question carrying the transcript so far
func (c *Conversation) Next(currentDate, question string) Request {
	rec := c.Record
	history := make([]Entry, len(c.history))
	copy(history, c.history)
	return Request{
		UserData:    &rec,
		CurrentDate: currentDate,
		Question:    question,
		History:     history,
	}
}

// Complete records a successful turn. Failed turns are never recorded so a
// retry resends the same history.
func (c *Conversation) Complete(question, reply string) {
	c.history = append(c.history,
		Entry{Role: RoleUser, Content: question},
		Entry{Role: RoleModel, Content: reply},
	)
}

func (c *Conversation) History() []Entry {
	return append([]Entry(nil), c.history...)
}

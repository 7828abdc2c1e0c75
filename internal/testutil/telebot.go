package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context that records replies instead of calling Telegram.
// Methods it does not override panic through the nil embedded interface.
type FakeContext struct {
	tele.Context

	User          *tele.User
	MessageText   string
	Payload       string
	CallbackQuery *tele.Callback

	EditErr error
	SendErr func(what interface{}) error

	Sent      []interface{}
	SentOpts  [][]interface{}
	Edited    []interface{}
	Responses []*tele.CallbackResponse
}

var _ tele.Context = (*FakeContext)(nil)

func (c *FakeContext) Sender() *tele.User       { return c.User }
func (c *FakeContext) Text() string             { return c.MessageText }
func (c *FakeContext) Data() string             { return c.Payload }
func (c *FakeContext) Callback() *tele.Callback { return c.CallbackQuery }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	if c.SendErr != nil {
		if err := c.SendErr(what); err != nil {
			return err
		}
	}
	c.Sent = append(c.Sent, what)
	c.SentOpts = append(c.SentOpts, opts)
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, what)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.Responses = append(c.Responses, nil)
		return nil
	}
	c.Responses = append(c.Responses, resp...)
	return nil
}

// SentTexts returns the text messages sent so far
func (c *FakeContext) SentTexts() []string {
	var out []string
	for _, s := range c.Sent {
		if text, ok := s.(string); ok {
			out = append(out, text)
		}
	}
	return out
}

// NewFakeMessage creates a context for a text message from userID
func NewFakeMessage(userID int64, text string) *FakeContext {
	return &FakeContext{
		User:        &tele.User{ID: userID, Username: "tester"},
		MessageText: text,
	}
}

// NewFakeCallback creates a context for a button press from userID
func NewFakeCallback(userID int64, unique, payload string) *FakeContext {
	return &FakeContext{
		User:          &tele.User{ID: userID, Username: "tester"},
		Payload:       payload,
		CallbackQuery: &tele.Callback{ID: "cb-1", Unique: unique, Data: payload},
	}
}

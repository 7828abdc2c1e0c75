package middleware

import (
	"testing"
	"time"

	"dictbot/internal/repository/memory"
	"dictbot/internal/service"
	"dictbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestSessionMiddleware(t *testing.T) {
	sessions := memory.NewSessionRepo()
	sessionService := service.NewSessionService(sessions, time.Hour, testutil.NewTestLogger())

	called := false
	next := func(c tele.Context) error {
		called = true
		return nil
	}

	h := SessionMiddleware(sessionService, testutil.NewTestLogger())(next)

	assert.NoError(t, h(testutil.NewFakeMessage(7, "hello")))
	assert.True(t, called)
	assert.Equal(t, 1, sessions.Count())
}

func TestSessionMiddleware_NoSender(t *testing.T) {
	sessions := memory.NewSessionRepo()
	sessionService := service.NewSessionService(sessions, time.Hour, testutil.NewTestLogger())

	called := false
	next := func(c tele.Context) error {
		called = true
		return nil
	}

	h := SessionMiddleware(sessionService, testutil.NewTestLogger())(next)

	assert.NoError(t, h(&testutil.FakeContext{}))
	assert.True(t, called)
	assert.Equal(t, 0, sessions.Count())
}

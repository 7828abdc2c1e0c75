package handler

import (
	"errors"
	"testing"

	"dictbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "save|cat",
			expected: "save|cat",
		},
		{
			name:     "string with whitespace",
			input:    "  save|cat  ",
			expected: "save|cat",
		},
		{
			name:     "string with newline",
			input:    "save\n|cat",
			expected: "save|cat",
		},
		{
			name:     "unique prefix",
			input:    "\fsave|cat",
			expected: "save|cat",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "save\x00|cat\x01",
			expected: "save|cat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHandleCallback_DispatchesByData(t *testing.T) {
	h, _, sessions := newTestHandler()

	c := testutil.NewFakeCallback(1, "", "")
	c.CallbackQuery.Data = "\fsave|dog"

	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, []string{"dog"}, sessions.Session(1).List())
	require.Len(t, c.Responses, 1)
	assert.Equal(t, "'dog' has been saved!", c.Responses[0].Text)
}

func TestHandleCallback_Unhandled(t *testing.T) {
	h, _, _ := newTestHandler()

	c := testutil.NewFakeCallback(1, "", "")
	c.CallbackQuery.Data = "something_else"

	require.NoError(t, h.handleCallback(c))
	assert.Equal(t, []*tele.CallbackResponse{nil}, c.Responses)
	assert.Empty(t, c.Sent)
}

func TestHandleEditError(t *testing.T) {
	h, _, _ := newTestHandler()

	t.Run("not modified is acknowledged", func(t *testing.T) {
		c := testutil.NewFakeCallback(1, "saved_words", "")
		err := h.handleEditError(errors.New("telegram: message is not modified (400)"), c, 1)
		assert.NoError(t, err)
		assert.Len(t, c.Responses, 1)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		c := testutil.NewFakeCallback(1, "saved_words", "")
		editErr := errors.New("telegram: message to edit not found (400)")
		err := h.handleEditError(editErr, c, 1)
		assert.ErrorIs(t, err, editErr)
		assert.Len(t, c.Responses, 1)
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, h.handleEditError(nil, testutil.NewFakeCallback(1, "", ""), 1))
	})
}

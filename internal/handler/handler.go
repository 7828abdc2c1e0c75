package handler

import (
	"sync"

	"dictbot/internal/domain"
	"dictbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	wordService *service.WordService
	logger      *zap.Logger

	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, wordService *service.WordService, logger *zap.Logger) *Handler {
	return &Handler{
		bot:         bot,
		wordService: wordService,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/saved", h.handleSavedWords)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnSave, h.handleSave)
	h.bot.Handle(&btnLookup, h.handleLookupShortcut)
	h.bot.Handle(&btnLookupAt, h.handleLookupAt)
	h.bot.Handle(&btnSavedWords, h.handleSavedWords)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for buttons whose unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ClearStates drops chat state for users whose sessions ended
func (h *Handler) ClearStates(userIDs []int64) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	for _, userID := range userIDs {
		delete(h.states, userID)
	}
}

// Inline keyboard buttons
var (
	btnSave = tele.Btn{
		Unique: "save",
		Text:   "💾 Save word",
	}
	btnLookup = tele.Btn{
		Unique: "lookup",
	}
	btnLookupAt = tele.Btn{
		Unique: "lookup_at",
	}
	btnSavedWords = tele.Btn{
		Unique: "saved_words",
		Text:   "📚 Saved words",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnSavedWords),
	)
	return menu
}

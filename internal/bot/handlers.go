package bot

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const queryTimeout = 15 * time.Second

// callbackUsePrefix tags callback data carrying a ready-to-edit query.
const callbackUsePrefix = "use:"

func (t *TelegramAPI) handleCommand(bot BotSender, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(bot, message)
	case "help":
		t.handleHelpCommand(bot, message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /help")
		sendMessage(bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(bot BotSender, message *tgbotapi.Message) {
	welcomeText := "🌍 Hi! I translate words via WordReference.\n\n" +
		"Send me a 4-letter language pair followed by a word:\n" +
		"`enfr hello` — English to French\n" +
		"`fren bonjour` — French to English\n\n" +
		"Send /help for more."

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ParseMode = tgbotapi.ModeMarkdown

	sendMessage(bot, msg)
}

func (t *TelegramAPI) handleHelpCommand(bot BotSender, message *tgbotapi.Message) {
	helpText := "📖 Usage: `[language_pair] [word]`\n\n" +
		"The pair is 4 letters: source then target language.\n" +
		"`enfr hello`, `ende computer`, `esen gracias`\n\n" +
		"Send an empty-looking or malformed query to see examples.\n" +
		"Translations come with tap-to-copy text and a WordReference link."

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	msg.ParseMode = tgbotapi.ModeMarkdown
	sendMessage(bot, msg)
}

// handleMessage treats every plain text message as one lookup query.
func (t *TelegramAPI) handleMessage(bot BotSender, message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	response := t.dispatcher.Dispatch(ctx, message.Text)

	for _, msg := range renderResponse(message.Chat.ID, response) {
		sendMessage(bot, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(bot BotSender, query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, callbackUsePrefix):
		t.handleUseCallback(bot, query, strings.TrimPrefix(data, callbackUsePrefix))
	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}

// handleUseCallback replies with a ready-to-edit query in monospace so the
// user can tap-copy it and fill in the word.
func (t *TelegramAPI) handleUseCallback(bot BotSender, query *tgbotapi.CallbackQuery, hint string) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "`"+strings.TrimPrefix(hint, t.trigger)+"`")
	msg.ParseMode = tgbotapi.ModeMarkdown
	sendMessage(bot, msg)
}

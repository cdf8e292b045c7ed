package bot

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tomsquest/wordref/internal/models"
)

type DispatcherI interface {
	Dispatch(ctx context.Context, raw string) models.Response
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TelegramAPI turns Telegram messages into queries and dispatcher responses
// into Telegram messages. Each incoming text message is one query.
type TelegramAPI struct {
	bot        *tgbotapi.BotAPI
	dispatcher DispatcherI
	trigger    string
}

func NewTelegramAPI(botToken, env, trigger string, dispatcher DispatcherI) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	return &TelegramAPI{
		bot:        bot,
		dispatcher: dispatcher,
		trigger:    trigger,
	}, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(t.bot, update.Message)
			} else {
				t.handleMessage(t.bot, update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(t.bot, update.CallbackQuery)
		}
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}

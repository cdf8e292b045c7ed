package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tomsquest/wordref/internal/models"
)

// renderResponse maps every display record to one Telegram message, in record
// order. The copy affordance becomes a tap-to-copy monospace line; the open
// affordance becomes a URL button; input hints become "Use" callback buttons.
func renderResponse(chatID int64, response models.Response) []tgbotapi.Chattable {
	messages := make([]tgbotapi.Chattable, 0, len(response.Records))
	for _, record := range response.Records {
		messages = append(messages, renderRecord(chatID, record))
	}
	return messages
}

func renderRecord(chatID int64, record models.DisplayRecord) tgbotapi.MessageConfig {
	var sb strings.Builder
	sb.WriteString("*")
	sb.WriteString(escapeMarkdown(record.Headline))
	sb.WriteString("*")

	if record.Detail != "" {
		sb.WriteString("\n")
		sb.WriteString(escapeMarkdown(record.Detail))
	}

	if payload := copyPayload(record); payload != "" {
		sb.WriteString("\n`")
		sb.WriteString(strings.ReplaceAll(payload, "`", "'"))
		sb.WriteString("`")
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = tgbotapi.ModeMarkdown

	if keyboard := recordKeyboard(record); keyboard != nil {
		msg.ReplyMarkup = keyboard
	}

	return msg
}

func copyPayload(record models.DisplayRecord) string {
	for _, action := range record.Actions {
		if action.Kind == models.ActionCopy {
			return action.Payload
		}
	}
	return ""
}

func recordKeyboard(record models.DisplayRecord) *tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton

	for _, action := range record.Actions {
		if action.Kind == models.ActionOpen {
			row = append(row, tgbotapi.NewInlineKeyboardButtonURL(action.Label, action.Payload))
		}
	}
	if record.InputHint != "" {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Use", callbackUsePrefix+record.InputHint))
	}

	if len(row) == 0 {
		return nil
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)
	return &keyboard
}

func escapeMarkdown(text string) string {
	for _, c := range []string{"_", "*", "#", "!"} {
		text = strings.ReplaceAll(text, c, "\\"+c)
	}
	return text
}

package reporter

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/scraper"
)

// Run identifies the run a report is about.
type Run struct {
	ID      string
	Keyword string
	Output  string
}

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	return NewTelegramReporterWithEndpoint(cfg.TelegramToken, cfg.TelegramChatID, tgbotapi.APIEndpoint)
}

// NewTelegramReporterWithEndpoint targets a non-default Bot API server.
// endpoint is a format string taking the token and the method name.
func NewTelegramReporterWithEndpoint(token string, chatID int64, endpoint string) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendSummary(run Run, stats scraper.RunStats) error {
	return t.SendMessage(FormatSummary(run, stats))
}

func (t *TelegramReporter) SendError(run Run, errReq error) error {
	return t.SendMessage(FormatError(run, errReq))
}

func FormatSummary(run Run, stats scraper.RunStats) string {
	return fmt.Sprintf(
		"✅ <b>LinkedIn scrape finished</b>\n"+
			"🔑 %s\n"+
			"📄 Pages: %d\n"+
			"💾 Written: %d / %d\n"+
			"⚠️ Skipped: %d\n"+
			"📁 %s\n"+
			"🆔 <code>%s</code>",
		html.EscapeString(run.Keyword),
		stats.Pages,
		stats.Written, stats.Seen,
		stats.Skipped,
		html.EscapeString(run.Output),
		html.EscapeString(run.ID),
	)
}

func FormatError(run Run, errReq error) string {
	return fmt.Sprintf(
		"❌ <b>LinkedIn scrape failed</b>\n"+
			"🔑 %s\n"+
			"%s\n"+
			"🆔 <code>%s</code>",
		html.EscapeString(run.Keyword),
		html.EscapeString(errReq.Error()),
		html.EscapeString(run.ID),
	)
}

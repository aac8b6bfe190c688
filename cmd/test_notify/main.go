package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sjperalta/gestor-negocios-api/internal/config"
	"github.com/sjperalta/gestor-negocios-api/internal/notify"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
)

// Sends one sample notification through the Telegram and email sinks so
// credentials can be checked without running the API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup("development", "debug")

	to := notify.Recipient{
		Email:          os.Getenv("TEST_EMAIL_TO"),
		TelegramChatID: os.Getenv("TEST_TELEGRAM_CHAT_ID"),
	}
	if to.Email == "" && to.TelegramChatID == "" {
		log.Fatal("Set TEST_EMAIL_TO or TEST_TELEGRAM_CHAT_ID")
	}

	sink := notify.NewMulti(func(name string, err error) {
		if err != nil {
			log.Printf("%s: failed: %v", name, err)
			return
		}
		log.Printf("%s: ok", name)
	},
		notify.NewTelegramSink(cfg.TelegramAPIURL, cfg.TelegramBotToken),
		notify.NewEmailSink(notify.EmailConfig{
			Enabled: true,
			APIKey:  cfg.ResendAPIKey,
			From:    cfg.FromEmail,
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	msg := notify.Message{
		Type:  "test",
		Title: "Notificación de prueba",
		Text:  "Si recibes este mensaje, las credenciales están bien configuradas.",
	}
	if err := sink.Notify(ctx, to, msg); err != nil {
		log.Fatalf("Delivery failed: %v", err)
	}
	log.Println("Test notification sent")
}

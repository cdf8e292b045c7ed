package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomsquest/wordref/internal/bot"
	"github.com/tomsquest/wordref/internal/client"
	"github.com/tomsquest/wordref/internal/config"
	"github.com/tomsquest/wordref/internal/models"
	"github.com/tomsquest/wordref/internal/service"
	"github.com/tomsquest/wordref/internal/storage/cache"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "wordref",
		Short:         "WordReference translation lookup",
		Long:          "wordref answers queries of the form '<pair> <word>' (e.g. 'enfr hello')\nagainst WordReference and renders ranked translation results.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCommand(), lookupCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot host",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, services, err := buildServices(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cfg.BotToken == "" {
				return fmt.Errorf("bot_token is required for serve (set BOT_TOKEN)")
			}

			handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, cfg.App.Trigger, services)
			if err != nil {
				return err
			}

			logger.Info("starting telegram host", zap.String("env", cfg.Env))
			handler.Start()
			return nil
		},
	}
}

func lookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [pair] [word...]",
		Short: "Run one query and print the results",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, services, err := buildServices(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync()

			response := services.Dispatch(cmd.Context(), strings.Join(args, " "))
			printResponse(cmd, response)
			return nil
		},
	}
}

func buildServices(ctx context.Context) (*config.Config, *zap.Logger, *service.Service, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed load config: %w", err)
	}

	logger := setupLogger(cfg.Env)

	clients := client.InitClients(cfg.Dict.BaseURL, cfg.Dict.Timeout)

	sessions := cache.NewSessionCache(func(code string) cache.TranslateSession {
		return clients.NewSession(code)
	})

	opts := service.Options{
		Trigger:         cfg.App.Trigger,
		SuggestionLimit: cfg.Suggest.Limit,
		Denylist:        cfg.Suggest.Denylist,
	}

	services, err := service.InitServices(ctx, clients, sessions, opts, logger)
	if err != nil {
		logger.Fatal("failed init services", zap.Error(err))
	}

	return cfg, logger, services, nil
}

func printResponse(cmd *cobra.Command, response models.Response) {
	cmd.Printf("[%s]\n", response.Mode)
	for _, record := range response.Records {
		cmd.Println(record.Headline)
		for _, line := range strings.Split(record.Detail, "\n") {
			if line != "" {
				cmd.Println("    " + line)
			}
		}
		for _, action := range record.Actions {
			cmd.Printf("    %s: %s\n", action.Label, action.Payload)
		}
		if record.InputHint != "" {
			cmd.Printf("    Type: %s\n", record.InputHint)
		}
	}
}

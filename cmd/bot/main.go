// Package main is the entry point for the ShorelineBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ShorelineInteractive/ShorelineBotGo/internal/commands"
	"github.com/ShorelineInteractive/ShorelineBotGo/internal/events"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/afk"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/config"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/errors"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/mqtt"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/permissions"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/sticky"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/tickets"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/verify"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/warnings"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting ShorelineBot Go...", "Main")
	logger.Info(fmt.Sprintf("Working directory: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize document storage
	store, err := openStore(cfg)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error opening document store: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if mongo, ok := store.(*storage.MongoStore); ok {
			if err := mongo.Disconnect(); err != nil {
				logger.Warn(fmt.Sprintf("Error disconnecting MongoDB: %v", err), "Main")
			}
		}
	}()

	// Initialize MQTT when a broker is configured
	var mqttClient *mqtt.Communicator
	if cfg.MQTTHost != "" {
		mqttClientID := "shorelinebot"
		if !cfg.IsProd() {
			mqttClientID = "shorelinebot_canary"
		}

		mqttClient = mqtt.Init(
			cfg.MQTTHost,
			cfg.MQTTPort,
			cfg.MQTTUser,
			cfg.MQTTPassword,
			mqttClientID,
		)
		defer mqttClient.Destroy()
	}

	// Initialize web server
	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Build the domain services on top of the store and the session
	platform := discord.NewTicketPlatform(discordClient.Session, cfg.GuildID, cfg.TicketCategoryID)

	policy, err := permissions.NewPolicy(store)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error loading permission policy: %v", err), "Main")
		os.Exit(1)
	}

	ledger, err := warnings.NewLedger(store, platform)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error loading warning ledger: %v", err), "Main")
		os.Exit(1)
	}

	ticketManager, err := tickets.NewManager(store, platform, tickets.Settings{
		EveryoneID:    cfg.GuildID,
		SupportRoleID: cfg.SupportRoleID,
		ReportRoleID:  cfg.ReportRoleID,
	})
	if err != nil {
		logger.Critical(fmt.Sprintf("Error loading ticket manager: %v", err), "Main")
		os.Exit(1)
	}

	stickyManager, err := sticky.NewManager(store)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error loading sticky messages: %v", err), "Main")
		os.Exit(1)
	}

	verifyManager, err := verify.NewManager(store)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error loading verification codes: %v", err), "Main")
		os.Exit(1)
	}

	discordClient.Services = discord.Services{
		Policy:  policy,
		Ledger:  ledger,
		Tickets: ticketManager,
		AFK:     afk.NewTracker(),
		Sticky:  stickyManager,
		Verify:  verifyManager,
		Audit:   audit.New(discordClient.Session, cfg.CommandLogChannelID, cfg.TicketLogChannelID, mqttClient),
	}

	// Register commands using the commands package
	commands.RegisterAll(discordClient)

	// Register events using the events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {

		}
	}(discordClient)

	logger.Success("ShorelineBot Go started successfully!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down ShorelineBot Go...", "Main")
}

// openStore selects the document store backend: MongoDB when configured,
// otherwise JSON files under the data directory
func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.UseMongo() {
		logger.Info("Using MongoDB document store", "Main")
		return storage.NewMongoStore(cfg.MongoDBURL, cfg.DBName)
	}
	logger.Info(fmt.Sprintf("Using JSON document store in %s", cfg.DataDir), "Main")
	return storage.NewJSONStore(cfg.DataDir)
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}

// Package discord provides the Discord bot client and related structures.
// It wraps discordgo with additional functionality for command, component
// and event handling, and carries the domain services commands operate on.
package discord

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/afk"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/audit"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/config"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/permissions"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/sticky"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/tickets"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/verify"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/warnings"
)

// Note: discordgo.Logger is a function, not an interface
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Info(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// Services bundles the domain layers the command handlers use
type Services struct {
	Policy  *permissions.Policy
	Ledger  *warnings.Ledger
	Tickets *tickets.Manager
	AFK     *afk.Tracker
	Sticky  *sticky.Manager
	Verify  *verify.Manager
	Audit   *audit.Logger
}

// ExtendedClient wraps discordgo.Session with additional functionality
type ExtendedClient struct {
	Session        *discordgo.Session
	Commands       *CommandCollection
	CommandHandler *CommandHandler
	EventHandler   *EventHandler
	Services       Services
	StartTime      time.Time

	componentHandlers map[string]ComponentHandler
	modalHandlers     map[string]ComponentHandler
	handlerMu         sync.RWMutex

	mu      sync.RWMutex
	isReady bool
}

// CommandCollection holds registered commands
type CommandCollection struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

// NewCommandCollection creates a new CommandCollection
func NewCommandCollection() *CommandCollection {
	return &CommandCollection{
		commands: make(map[string]*Command),
	}
}

// Set adds or updates a command
func (cc *CommandCollection) Set(name string, cmd *Command) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.commands[name] = cmd
}

// Get retrieves a command by name
func (cc *CommandCollection) Get(name string) (*Command, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	cmd, ok := cc.commands[name]
	return cmd, ok
}

// Size returns the number of commands
func (cc *CommandCollection) Size() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.commands)
}

// All returns all commands
func (cc *CommandCollection) All() map[string]*Command {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	result := make(map[string]*Command)
	for k, v := range cc.commands {
		result[k] = v
	}
	return result
}

var (
	client *ExtendedClient
	once   sync.Once
)

// Init initializes the global Discord client
func Init(token string) (*ExtendedClient, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(token)
	})
	return client, err
}

// Get returns the global Discord client
func Get() *ExtendedClient {
	return client
}

// NewClient creates a new ExtendedClient
func NewClient(token string) (*ExtendedClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	session.ShardCount = 1
	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	c := &ExtendedClient{
		Session:           session,
		Commands:          NewCommandCollection(),
		componentHandlers: make(map[string]ComponentHandler),
		modalHandlers:     make(map[string]ComponentHandler),
	}

	c.CommandHandler = NewCommandHandler(c)
	c.EventHandler = NewEventHandler(c)

	return c, nil
}

// Start opens the gateway connection and registers commands once ready
func (c *ExtendedClient) Start() error {
	c.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.mu.Lock()
		c.isReady = true
		c.mu.Unlock()

		logger.Success("Bot connected as: "+r.User.Username, "Client")

		c.CommandHandler.RegisterCommands()
	})

	c.Session.AddHandler(c.handleInteraction)

	c.StartTime = time.Now()

	return c.Session.Open()
}

// RegisterComponent routes message components whose custom id starts with
// the given prefix to the handler.
func (c *ExtendedClient) RegisterComponent(prefix string, handler ComponentHandler) {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()
	c.componentHandlers[prefix] = handler
}

// RegisterModal routes modal submissions whose custom id starts with the
// given prefix to the handler.
func (c *ExtendedClient) RegisterModal(prefix string, handler ComponentHandler) {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()
	c.modalHandlers[prefix] = handler
}

// resolveHandler picks the handler registered under the longest matching
// prefix of customID.
func resolveHandler(handlers map[string]ComponentHandler, customID string) (ComponentHandler, bool) {
	var best string
	var found ComponentHandler
	for prefix, handler := range handlers {
		if strings.HasPrefix(customID, prefix) && len(prefix) > len(best) {
			best = prefix
			found = handler
		}
	}
	return found, found != nil
}

// fullCommandName builds the routing key for subcommands ("group.sub")
func fullCommandName(data discordgo.ApplicationCommandInteractionData) string {
	name := data.Name
	if len(data.Options) > 0 {
		opt := data.Options[0]
		if opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			if len(opt.Options) > 0 {
				name = data.Name + "." + opt.Name + "." + opt.Options[0].Name
			}
		} else if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			name = data.Name + "." + opt.Name
		}
	}
	return name
}

// handleInteraction handles incoming Discord interactions
func (c *ExtendedClient) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := &CommandContext{
		Session:     s,
		Interaction: i,
		Client:      c,
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		cmd, ok := c.Commands.Get(fullCommandName(i.ApplicationCommandData()))
		if ok && cmd.AutoComplete != nil {
			cmd.AutoComplete(ctx)
		}
		return

	case discordgo.InteractionMessageComponent:
		c.handlerMu.RLock()
		handler, ok := resolveHandler(c.componentHandlers, i.MessageComponentData().CustomID)
		c.handlerMu.RUnlock()
		if !ok {
			return
		}
		if err := handler(ctx); err != nil {
			logger.Error("Error handling component "+i.MessageComponentData().CustomID+": "+err.Error(), "Client")
		}
		return

	case discordgo.InteractionModalSubmit:
		c.handlerMu.RLock()
		handler, ok := resolveHandler(c.modalHandlers, i.ModalSubmitData().CustomID)
		c.handlerMu.RUnlock()
		if !ok {
			return
		}
		if err := handler(ctx); err != nil {
			logger.Error("Error handling modal "+i.ModalSubmitData().CustomID+": "+err.Error(), "Client")
		}
		return

	case discordgo.InteractionApplicationCommand:
		// handled below

	default:
		return
	}

	commandName := fullCommandName(i.ApplicationCommandData())
	cmd, ok := c.Commands.Get(commandName)
	if !ok {
		logger.Warn("Command not found: "+commandName, "Client")
		return
	}

	if err := c.PermissionMiddleware(ctx, cmd); err != nil {
		return
	}

	if err := cmd.Run(ctx); err != nil {
		logger.Error("Error executing command "+commandName+": "+err.Error(), "Client")
	}
}

// Stop stops the bot and closes the session
func (c *ExtendedClient) Stop() error {
	c.mu.Lock()
	c.isReady = false
	c.mu.Unlock()

	if c.Session != nil {
		return c.Session.Close()
	}
	return nil
}

// IsReady returns true if the bot is ready
func (c *ExtendedClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// GuildCount returns the number of guilds the bot is in
func (c *ExtendedClient) GuildCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	return len(c.Session.State.Guilds)
}

// GetConfig returns the bot configuration
func (c *ExtendedClient) GetConfig() *config.Config {
	return config.Get()
}

package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "test" {
		t.Errorf("Name = %v, want %v", cmd.Name, "test")
	}

	if cmd.Description != "Test command" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Test command")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandWithOptions verifies the WithOptions builder method
func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "test-option",
		Description: "Test option",
		Required:    true,
	}

	cmd := NewCommand("test", "Test command", "test", handler).
		WithOptions(option)

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}

	if cmd.Options[0].Name != "test-option" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "test-option")
	}
}

// TestCommandBuilderFlags verifies the permission and flag builder methods
func TestCommandBuilderFlags(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler).
		WithUserPermissions(discordgo.PermissionAdministrator).
		AsPrivileged().
		AsDev()

	if cmd.UserPermissions != discordgo.PermissionAdministrator {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionAdministrator)
	}

	if !cmd.Privileged {
		t.Error("Privileged should be true after calling AsPrivileged()")
	}

	if !cmd.IsDev {
		t.Error("IsDev should be true after calling AsDev()")
	}
}

// TestToApplicationCommand verifies conversion to Discord application command
func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler).
		WithOptions(&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "test-option",
			Description: "Test option",
		})

	appCmd := cmd.ToApplicationCommand()

	if appCmd == nil {
		t.Fatal("ToApplicationCommand returned nil")
	}

	if appCmd.Name != "test" {
		t.Errorf("ApplicationCommand Name = %v, want %v", appCmd.Name, "test")
	}

	if len(appCmd.Options) != 1 {
		t.Fatalf("ApplicationCommand Options length = %v, want %v", len(appCmd.Options), 1)
	}
}

// TestFullCommandName verifies subcommand routing key construction
func TestFullCommandName(t *testing.T) {
	plain := discordgo.ApplicationCommandInteractionData{Name: "ping"}
	if got := fullCommandName(plain); got != "ping" {
		t.Errorf("fullCommandName(plain) = %v, want ping", got)
	}

	sub := discordgo.ApplicationCommandInteractionData{
		Name: "mod",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "warn"},
		},
	}
	if got := fullCommandName(sub); got != "mod.warn" {
		t.Errorf("fullCommandName(sub) = %v, want mod.warn", got)
	}

	group := discordgo.ApplicationCommandInteractionData{
		Name: "admin",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Type: discordgo.ApplicationCommandOptionSubCommandGroup,
				Name: "roles",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "add"},
				},
			},
		},
	}
	if got := fullCommandName(group); got != "admin.roles.add" {
		t.Errorf("fullCommandName(group) = %v, want admin.roles.add", got)
	}
}

// TestResolveHandlerPrefersLongestPrefix verifies component routing
func TestResolveHandlerPrefersLongestPrefix(t *testing.T) {
	var picked string
	handlers := map[string]ComponentHandler{
		"ticket_": func(ctx *CommandContext) error { picked = "ticket_"; return nil },
		"ticket_modal_": func(ctx *CommandContext) error { picked = "ticket_modal_"; return nil },
	}

	handler, ok := resolveHandler(handlers, "ticket_modal_report")
	if !ok {
		t.Fatal("resolveHandler found no handler")
	}
	handler(nil)
	if picked != "ticket_modal_" {
		t.Errorf("resolved prefix = %v, want ticket_modal_", picked)
	}

	if _, ok := resolveHandler(handlers, "unrelated"); ok {
		t.Error("resolveHandler matched an unrelated custom id")
	}
}

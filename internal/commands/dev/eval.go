// Package dev - /dev eval command
package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/config"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/errors"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
)

// createEvalCommand creates the /dev eval subcommand
func createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evaluate Go code inside the running bot (dangerous)",
		"dev",
		evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Go code or expression to evaluate",
			Required:    true,
		},
	).AsDev()
}

func evalHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		ctx.Defer()

		// strip markdown code fences if present
		code := ctx.GetStringOption("code")
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		i := interp.New(interp.Options{})

		if err := i.Use(stdlib.Symbols); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error loading stdlib: %v", err))
			return
		}

		// expose the live bot handles as globals inside the interpreter
		botExports := map[string]reflect.Value{
			"Ctx":      reflect.ValueOf(ctx),
			"Bot":      reflect.ValueOf(ctx.Client),
			"Session":  reflect.ValueOf(ctx.Session),
			"Services": reflect.ValueOf(ctx.Client.Services),
			"Config":   reflect.ValueOf(config.Get()),
		}

		if err := i.Use(interp.Exports{
			"github.com/ShorelineInteractive/ShorelineBotGo/internal/commands/dev/dev": botExports,
		}); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error registering variables: %v", err))
			return
		}

		_, err := i.Eval(`import . "github.com/ShorelineInteractive/ShorelineBotGo/internal/commands/dev"`)
		if err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error importing variables: %v", err))
			return
		}

		res, err := i.Eval(code)

		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Execution Error:**\n```go\n%v\n```", err)
		} else {
			var resStr string
			if res.IsValid() {
				resStr = fmt.Sprintf("%#v", res.Interface())
			} else {
				resStr = "nil"
			}
			if len(resStr) > 1900 {
				resStr = resStr[:1900] + "... (truncated)"
			}

			output = fmt.Sprintf("✅ **Result:**\n```go\n%s\n```", resStr)
		}

		elapsed := time.Since(start)
		logger.Debug(fmt.Sprintf("Eval completed in %s", elapsed), "DevEval")

		ctx.EditReply(output)
	}()
	return nil
}

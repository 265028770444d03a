// Package tickets provides the /ticket commands and the button/modal
// handlers driving the ticket lifecycle.
package tickets

import (
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// Register registers the /ticket command group and the component handlers
func Register(client *discord.ExtendedClient) {
	ticketGroup := client.CommandHandler.BuildCommandGroup(
		"ticket",
		"Support ticket commands",
		createPanelCommand(),
		createAddCommand(),
		createRemoveCommand(),
	)
	client.CommandHandler.AddGlobalCommand(ticketGroup)

	client.RegisterComponent(createButtonPrefix, openTicketModal)
	client.RegisterModal(modalPrefix, submitTicketModal)
	client.RegisterComponent(claimButtonID, claimTicket)
	client.RegisterComponent(closeButtonID, closeTicket)
	client.RegisterComponent(reopenButtonID, reopenTicket)
	client.RegisterComponent(transcriptButtonID, saveTranscript)
	client.RegisterComponent(deleteButtonID, deleteTicket)
}

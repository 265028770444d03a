// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/discord"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/tickets", ticketsHandler)
		api.GET("/logs/stream", logStreamHandler)
	}
}

// statusHandler returns the bot status and domain counters
func statusHandler(c *gin.Context) {
	client := discord.Get()

	botOnline := false
	openTickets := 0
	totalWarnings := 0
	uptime := ""
	if client != nil {
		botOnline = client.IsReady()
		uptime = time.Since(client.StartTime).Round(time.Second).String()
		if client.Services.Tickets != nil {
			openTickets = client.Services.Tickets.Count()
		}
		if client.Services.Ledger != nil {
			totalWarnings = client.Services.Ledger.Count()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"bot": gin.H{
			"isOnline": botOnline,
			"uptime":   uptime,
		},
		"tickets": gin.H{
			"open": openTickets,
		},
		"warnings": gin.H{
			"total": totalWarnings,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "ShorelineBot Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"avatar":   user.Avatar,
		"guilds":   client.GuildCount(),
		"isReady":  client.IsReady(),
	})
}

// ticketsHandler returns a snapshot of live tickets
func ticketsHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || client.Services.Tickets == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Ticket service unavailable",
		})
		return
	}

	tickets := client.Services.Tickets.List()
	out := make([]gin.H, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, gin.H{
			"id":        t.ID,
			"owner":     t.OwnerName,
			"category":  string(t.Category),
			"state":     string(t.State),
			"claimant":  t.ClaimantID,
			"createdAt": t.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(out),
		"tickets": out,
	})
}

// Package web provides the live log stream endpoint.
package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// host filtering already happened in the middleware chain
	CheckOrigin: func(r *http.Request) bool { return true },
}

// logStreamHandler upgrades the connection and tails the bot log over it.
// Slow consumers miss lines rather than stalling the logger.
func logStreamHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Failed to upgrade log stream connection: "+err.Error(), "WebServer")
		return
	}
	defer conn.Close()

	lines := logger.Get().Subscribe()
	defer logger.Get().Unsubscribe(lines)

	// drain client frames so pings and close frames are processed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for line := range lines {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
			return
		}
	}
}

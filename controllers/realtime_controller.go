package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"sproutly/middlewares"
	"sproutly/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Token auth happens before the upgrade; the app is the only client.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type RealtimeController struct {
	hub *services.ProgressHub
	log *zap.Logger
}

func NewRealtimeController(hub *services.ProgressHub, log *zap.Logger) *RealtimeController {
	return &RealtimeController{hub: hub, log: log}
}

// ProgressWS subscribes the connection to the caller's stats key and
// holds it open with pings until the client goes away.
func (rc *RealtimeController) ProgressWS(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rc.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	client := &services.WSClient{Key: user.StatsKey(), Conn: conn}
	rc.hub.Register(client)
	defer func() {
		rc.hub.Unregister(client)
		conn.Close()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}

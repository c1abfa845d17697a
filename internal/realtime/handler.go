package realtime

import (
	"errors"
	"log"
	"net/http"

	"ticketcue/helper"
	"ticketcue/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func RegisterRoutes(r *gin.Engine, hub *Hub, secured gin.HandlerFunc) {
	r.GET("api/v1/ws", secured, func(c *gin.Context) {
		ServeWS(hub, c)
	})
}

func ServeWS(hub *Hub, c *gin.Context) {

	userID := c.GetString(constants.UserID)
	if userID == "" {
		helper.SendError(c, http.StatusUnauthorized, errors.New("no authenticated user"), helper.ErrUnauthorizedCode)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	cl := &client{
		id:     uuid.NewString(),
		userID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan message, 8),
	}

	hub.register(userID, cl)

	go cl.writePump()
	go cl.readPump()
}

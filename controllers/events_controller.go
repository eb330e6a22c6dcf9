package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/spice-app/api-go/repositories"
	"github.com/spice-app/api-go/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type EventsController struct {
	Profiles repositories.ProfileRepository
	Hub      *ws.Hub
}

func NewEventsController(profiles repositories.ProfileRepository, hub *ws.Hub) *EventsController {
	return &EventsController{Profiles: profiles, Hub: hub}
}

// Subscribe upgrades the request to a websocket and streams match/message
// events to the authenticated profile until the client disconnects.
func (ec *EventsController) Subscribe(c *gin.Context) {
	profile, ok := currentProfile(c, ec.Profiles)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	ec.Hub.AddClient(profile.ID, conn)
	defer func() {
		ec.Hub.RemoveClient(profile.ID, conn)
		conn.Close()
	}()

	// Drain the connection; clients only receive.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/tabletaste/tabletaste-app/livefeed"
	"github.com/tabletaste/tabletaste-app/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type FeedController struct{}

func NewFeedController() *FeedController {
	return &FeedController{}
}

// Feed upgrades the connection and streams live events until the client
// goes away. The read loop exists only to detect disconnects; clients do
// not send anything meaningful.
func (fc *FeedController) Feed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("feed upgrade failed: %v", err)
		return
	}

	livefeed.RegisterClient(conn)
	utils.InfoLogger.Printf("feed client connected (%d total)", livefeed.ClientCount())

	go func() {
		defer livefeed.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

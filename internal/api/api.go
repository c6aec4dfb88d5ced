package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	callHandler "call-server/internal/callsession/handler"
	"call-server/internal/stream"
)

type API struct {
	router      *gin.RouterGroup
	callHandler callHandler.Handler
	broadcaster *stream.Broadcaster
}

func New(router *gin.RouterGroup, handler callHandler.Handler, broadcaster *stream.Broadcaster) API {
	return API{
		router:      router,
		callHandler: handler,
		broadcaster: broadcaster,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Provider webhooks
	a.router.POST("/transcribe", a.callHandler.HandleTranscribe)
	a.router.POST("/respond", a.callHandler.HandleRespond)
	a.router.POST("/call-status", a.callHandler.HandleCallStatus)
	a.router.GET("/text-to-speech/:callSid", a.callHandler.HandleTextToSpeech)

	// Live call event stream
	a.router.GET("/stream", a.broadcaster.HandleStream)

	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/calls", a.callHandler.HandleStartCall)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

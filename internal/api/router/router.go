package router

import (
	"github.com/wb-go/wbf/ginext"

	reminderh "github.com/mkovridov/schedcore/internal/api/handlers/reminder"
	subscriptionh "github.com/mkovridov/schedcore/internal/api/handlers/subscription"
	"github.com/mkovridov/schedcore/internal/api/handlers/websub"
	"github.com/mkovridov/schedcore/internal/middlewares"
)

func New(
	reminders *reminderh.Handler,
	subscriptions *subscriptionh.Handler,
	callbacks *websub.Handler,
) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		rem := api.Group("/reminders")
		{
			rem.POST("/", reminders.Create)
			rem.GET("/", reminders.List)
			rem.DELETE("/:id", reminders.Cancel)
		}

		sub := api.Group("/subscriptions")
		{
			sub.POST("/", subscriptions.Add)
			sub.DELETE("/", subscriptions.Remove)
		}

		api.GET("/websub/callback", callbacks.Verify)
		api.POST("/websub/callback", callbacks.Notify)
	}

	return e
}

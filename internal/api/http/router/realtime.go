package router

import (
	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

var upgrader = websocket.FastHTTPUpgrader{
	// Browser clients authenticate in-band with an authenticate event, so
	// cross-origin upgrades are allowed.
	CheckOrigin: func(*fasthttp.RequestCtx) bool { return true },
}

func (r *Router) registerRealtimeRoutes(app *fiber.App) {
	app.Get("/ws", func(c fiber.Ctx) error {
		return upgrader.Upgrade(c.RequestCtx(), func(conn *websocket.Conn) {
			r.p.Realtime.ServeWS(conn)
		})
	})
}

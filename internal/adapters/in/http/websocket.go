package http

import (
	"context"
	"time"

	"dispatch/internal/adapters/out/notifier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
)

// sendTimeout bounds one event write; a connection that cannot take an
// event within it is considered dead and dropped by the hub.
const sendTimeout = 5 * time.Second

// Subscribe handles GET /api/v1/subscribe - upgrades the connection to a
// websocket and registers it with the notification hub under the requested
// role and user identity. The connection stays registered until the client
// disconnects or a send fails.
func (s *Server) Subscribe(ctx echo.Context) error {
	role, err := kernel.RoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return badRequest(ctx, "Invalid role")
	}

	userID := ctx.QueryParam("user_id")
	if userID == "" {
		return badRequest(ctx, "user_id is required")
	}

	conn, err := websocket.Accept(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Accept has already written the handshake failure response.
		return nil
	}

	sub := s.hub.Register(role, userID, &websocketSender{conn: conn})
	defer s.hub.Unregister(sub)

	// Clients never send application data; the read loop just waits for
	// the connection to go away and services control frames meanwhile.
	reqCtx := ctx.Request().Context()
	for {
		if _, _, err = conn.Read(reqCtx); err != nil {
			break
		}
	}

	_ = conn.Close(websocket.StatusNormalClosure, "")
	return nil
}

// websocketSender adapts one websocket connection to the hub's Sender.
type websocketSender struct {
	conn *websocket.Conn
}

// Send writes the event as a JSON text message.
func (s *websocketSender) Send(event ports.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	return wsjson.Write(ctx, s.conn, event)
}

// Interface check.
var _ notifier.Sender = (*websocketSender)(nil)

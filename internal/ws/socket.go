// Package ws pushes game and history snapshots to the local UI over
// Socket.IO.
package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/kiliankoe/wingscore/internal/game"
	"github.com/kiliankoe/wingscore/internal/history"
	"github.com/rs/zerolog"
)

// every connection joins the same room; there is one game per device
const room = "table"

type Server struct {
	Game    *game.Store
	History *history.Archive

	unsubscribe func()
	log         zerolog.Logger
}

func New(g *game.Store, h *history.Archive, logger zerolog.Logger) *Server {
	return &Server{Game: g, History: h, log: logger.With().Str("component", "ws").Logger()}
}

// Mount attaches the Socket.IO server to r and starts broadcasting
// game:state and history:state on every change.
func (srv *Server) Mount(r *gin.Engine) *socketio.Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(s socketio.Conn) error {
		s.Join(room)
		s.Emit("game:state", srv.Game.Snapshot())
		s.Emit("history:state", srv.History.Records())
		srv.log.Info().Str("sid", s.ID()).Msg("socket connected")
		return nil
	})

	// game:sync lets a client that missed broadcasts catch up
	io.OnEvent("/", "game:sync", func(s socketio.Conn) map[string]any {
		return map[string]any{
			"state":   srv.Game.Snapshot(),
			"history": srv.History.Records(),
		}
	})

	io.OnError("/", func(s socketio.Conn, e error) {
		if s == nil {
			srv.log.Error().Err(e).Msg("socket error")
			return
		}
		srv.log.Error().Str("sid", s.ID()).Err(e).Msg("socket error")
	})
	io.OnDisconnect("/", func(s socketio.Conn, reason string) {
		srv.log.Info().Str("sid", s.ID()).Str("reason", reason).Msg("socket disconnected")
	})

	go func() {
		if err := io.Serve(); err != nil {
			srv.log.Error().Err(err).Msg("socket server stopped")
		}
	}()

	srv.unsubscribe = srv.Game.Subscribe(func(st game.GameState) {
		io.BroadcastToRoom("/", room, "game:state", st)
	})
	srv.History.OnChange(func(records []history.GameRecord) {
		io.BroadcastToRoom("/", room, "history:state", records)
	})

	r.GET("/socket.io/*any", gin.WrapH(io))
	r.POST("/socket.io/*any", gin.WrapH(io))

	// Basic CORS preflight for Socket.IO POST
	r.OPTIONS("/socket.io/*any", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
	})

	return io
}

// Close stops forwarding game snapshots.
func (srv *Server) Close() {
	if srv.unsubscribe != nil {
		srv.unsubscribe()
		srv.unsubscribe = nil
	}
}

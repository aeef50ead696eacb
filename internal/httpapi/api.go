// Package httpapi exposes the game store and history archive to the local UI
// as a JSON API.
package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiliankoe/wingscore/internal/game"
	"github.com/kiliankoe/wingscore/internal/history"
	"github.com/rs/zerolog"
)

type Server struct {
	Game    *game.Store
	History *history.Archive

	// ExportFile, when set, receives a text summary of every finished game.
	ExportFile string

	now func() time.Time
	log zerolog.Logger
}

func New(g *game.Store, h *history.Archive, logger zerolog.Logger) *Server {
	return &Server{Game: g, History: h, now: time.Now, log: logger}
}

// Logger logs each request except socket.io polling.
func Logger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/socket.io") {
			return
		}
		logger.Info().Str("method", c.Request.Method).Str("path", path).
			Int("status", c.Writer.Status()).Dur("dur", time.Since(start)).Msg("http")
	}
}

// Mount registers every route on r.
func (srv *Server) Mount(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	g := r.Group("/api/game")
	g.GET("", srv.state)
	g.GET("/validation", srv.validation)
	g.GET("/points", srv.points)
	g.GET("/category", srv.category)
	g.POST("/players", srv.addPlayer)
	g.DELETE("/players/:id", srv.removePlayer)
	g.PUT("/players/:id/scores/:category", srv.updateScore)
	g.PUT("/players/:id/rounds/:index", srv.updateRoundPlacement)
	g.PUT("/players/:id/nectar/:index", srv.updateNectarPlacement)
	g.DELETE("/rounds", srv.act(srv.Game.ResetAllRoundPlacements))
	g.DELETE("/nectar", srv.act(srv.Game.ResetAllNectarPlacements))
	g.PUT("/start-player", srv.setStartPlayer)
	g.POST("/start-player/random", srv.randomStartPlayer)
	g.PUT("/phase", srv.setPhase)
	g.POST("/start", srv.act(srv.Game.StartScoring))
	g.POST("/next", srv.act(srv.Game.NextCategory))
	g.POST("/prev", srv.act(srv.Game.PrevCategory))
	g.POST("/back-to-scoring", srv.act(srv.Game.BackToScoring))
	g.POST("/reset", srv.act(srv.Game.ResetGame))
	g.POST("/finish", srv.finish)

	h := r.Group("/api/history")
	h.GET("", srv.listHistory)
	h.GET("/stats", srv.historyStats)
	h.GET("/:id", srv.getGame)
	h.DELETE("/:id", srv.deleteGame)
	h.DELETE("", srv.clearHistory)
}

func (srv *Server) state(c *gin.Context) {
	c.JSON(http.StatusOK, srv.Game.Snapshot())
}

func (srv *Server) act(fn func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		fn()
		srv.state(c)
	}
}

func badRequest(c *gin.Context, code string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": code})
}

func (srv *Server) validation(c *gin.Context) {
	st := srv.Game.Snapshot()
	rounds := make([]bool, game.RoundCount)
	for r := range rounds {
		rounds[r] = game.ValidateRoundGoalsRow(st.Players, r)
	}
	biomes := make([]bool, game.BiomeCount)
	for b := range biomes {
		biomes[b] = game.ValidateNectarRow(st.Players, b)
	}
	c.JSON(http.StatusOK, gin.H{
		"roundGoals":    rounds,
		"nectar":        biomes,
		"allRoundGoals": game.ValidateAllRoundGoals(st.Players),
		"allNectar":     game.ValidateAllNectar(st.Players),
	})
}

// points lists the placement tables the scorer applies.
func (srv *Server) points(c *gin.Context) {
	rounds := make([][]int, game.RoundCount)
	for r := range rounds {
		rounds[r] = game.RoundGoalPoints(r)
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": game.Categories,
		"roundGoals": rounds,
		"nectar":     game.NectarPoints(),
	})
}

func (srv *Server) category(c *gin.Context) {
	st := srv.Game.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"phase":    st.CurrentPhase,
		"index":    st.CurrentScoringCategoryIndex,
		"category": st.CurrentCategory(),
	})
}

func (srv *Server) addPlayer(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_player")
		return
	}
	id := srv.Game.AddPlayer(req.Name, req.Color)
	c.JSON(http.StatusCreated, gin.H{"playerId": id, "state": srv.Game.Snapshot()})
}

func (srv *Server) removePlayer(c *gin.Context) {
	srv.Game.RemovePlayer(c.Param("id"))
	srv.state(c)
}

func (srv *Server) updateScore(c *gin.Context) {
	category, ok := game.ParseCategory(c.Param("category"))
	if !ok {
		badRequest(c, "unknown_category")
		return
	}
	var req struct {
		Value *int `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_score")
		return
	}
	srv.Game.UpdateScore(c.Param("id"), category, *req.Value)
	srv.state(c)
}

type placementReq struct {
	Rank *int `json:"rank" binding:"required"`
}

func (srv *Server) placement(c *gin.Context, limit int, apply func(id string, index, rank int)) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= limit {
		badRequest(c, "invalid_index")
		return
	}
	var req placementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_rank")
		return
	}
	apply(c.Param("id"), index, *req.Rank)
	srv.state(c)
}

func (srv *Server) updateRoundPlacement(c *gin.Context) {
	srv.placement(c, game.RoundCount, srv.Game.UpdateRoundPlacement)
}

func (srv *Server) updateNectarPlacement(c *gin.Context) {
	srv.placement(c, game.BiomeCount, srv.Game.UpdateNectarPlacement)
}

func (srv *Server) setStartPlayer(c *gin.Context) {
	var req struct {
		PlayerID string `json:"playerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_player")
		return
	}
	srv.Game.SetStartPlayer(req.PlayerID)
	srv.state(c)
}

func (srv *Server) randomStartPlayer(c *gin.Context) {
	id, ok := srv.Game.RandomizeStartPlayer()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "no_players"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"playerId": id, "state": srv.Game.Snapshot()})
}

func (srv *Server) setPhase(c *gin.Context) {
	var req struct {
		Phase string `json:"phase" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_phase")
		return
	}
	phase, ok := game.ParsePhase(req.Phase)
	if !ok {
		badRequest(c, "invalid_phase")
		return
	}
	srv.Game.SetPhase(phase)
	srv.state(c)
}

// finish archives the current game. Saving the same game again after an
// adjustment replaces the earlier record and exports it as a revision.
func (srv *Server) finish(c *gin.Context) {
	st := srv.Game.Snapshot()
	if st.CurrentPhase != game.PhaseResult && st.CurrentPhase != game.PhaseStats {
		c.JSON(http.StatusConflict, gin.H{"error": "invalid_phase"})
		return
	}
	rec := history.NewRecord(st, srv.now())
	replaced := srv.History.SaveGame(rec)
	if srv.ExportFile != "" {
		if err := history.Export(rec, srv.ExportFile, replaced); err != nil {
			srv.log.Error().Err(err).Str("file", srv.ExportFile).Msg("export failed")
		}
	}
	c.JSON(http.StatusOK, rec)
}

func (srv *Server) listHistory(c *gin.Context) {
	c.JSON(http.StatusOK, srv.History.Records())
}

func (srv *Server) getGame(c *gin.Context) {
	rec, ok := srv.History.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// historyStats aggregates the archive. ?group=a,b picks the players to
// compare against their earlier games and defaults to the current table;
// ?bucket sets the distribution width.
func (srv *Server) historyStats(c *gin.Context) {
	bucket := 10
	if v := c.Query("bucket"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			badRequest(c, "invalid_bucket")
			return
		}
		bucket = n
	}

	var group []string
	if v := c.Query("group"); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				group = append(group, name)
			}
		}
	} else {
		for _, p := range srv.Game.Snapshot().Players {
			group = append(group, p.Name)
		}
	}

	records := srv.History.Records()
	c.JSON(http.StatusOK, gin.H{
		"games":             len(records),
		"players":           history.Summarize(records),
		"recentPlayers":     history.RecentPlayers(records, 10),
		"categoryAverages":  history.CategoryAverages(records),
		"scoreDistribution": history.ScoreDistribution(records, bucket),
		"groupComparison":   history.CompareGroup(records, group),
	})
}

func (srv *Server) deleteGame(c *gin.Context) {
	srv.History.DeleteGame(c.Param("id"))
	c.JSON(http.StatusOK, srv.History.Records())
}

func (srv *Server) clearHistory(c *gin.Context) {
	srv.History.ClearHistory()
	c.JSON(http.StatusOK, srv.History.Records())
}

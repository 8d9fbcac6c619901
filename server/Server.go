// Package server serves the greedy policy of a learned table of action
// values over HTTP
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samuelfneumann/qlearn/policy"
	"github.com/samuelfneumann/qlearn/qtable"
	"github.com/samuelfneumann/qlearn/rlerr"
)

// Server is a read-only HTTP server for a table of action values. The
// table must not be modified while the Server is running.
type Server struct {
	q      *qtable.QTable
	engine *gin.Engine
}

// ActionResponse is returned when querying the greedy action of a state
type ActionResponse struct {
	State  int       `json:"state"`
	Action int       `json:"action"`
	Values []float64 `json:"values"`
}

// New returns a new Server for the table q. If logRequests is true,
// every request is logged with gin's logger.
func New(q *qtable.QTable, logRequests bool) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	if logRequests {
		r.Use(gin.Logger())
	}

	s := &Server{q: q, engine: r}
	r.GET("/healthz", s.handleHealth)
	r.GET("/qtable", s.handleTable)
	r.GET("/states/:state/action", s.handleAction)

	return s
}

// Handler returns the http.Handler of the Server
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves requests on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (s *Server) handleTable(c *gin.Context) {
	c.JSON(http.StatusOK, s.q)
}

func (s *Server) handleAction(c *gin.Context) {
	state, err := strconv.Atoi(c.Param("state"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state must be an integer"})
		return
	}

	action, err := policy.Greedy(s.q, state)
	if rlerr.IsOutOfRange(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	values, err := s.q.Row(state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ActionResponse{
		State:  state,
		Action: action,
		Values: values,
	})
}

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazepath/mazeio"
	"github.com/katalvlaran/mazepath/solver"
)

// SolveRequest is the JSON form of a solve request body.
type SolveRequest struct {
	Maze string `json:"maze"`
}

// SolveResponse is the body of a successful solve.
type SolveResponse struct {
	*solver.Report
	Rendered string `json:"rendered,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleSolve handles POST /v1/solve.
//
// Status codes:
//
//	200  solved (an unreachable end is still a 200)
//	400  malformed maze, JSON or query
//	413  body larger than max_body_bytes, or grid above max_cells
//	500  solver failure
//
// Query flags: render=true adds the grid with optimal cells marked, and
// arrows=true additionally draws one optimal route with heading arrows.
func (s *Server) handleSolve(c *gin.Context) {
	render, err := strconv.ParseBool(c.DefaultQuery("render", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "render must be a boolean"})
		return
	}
	arrows, err := strconv.ParseBool(c.DefaultQuery("arrows", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "arrows must be a boolean"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: "maze exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes",
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	text := body
	if c.ContentType() == gin.MIMEJSON {
		var req SolveRequest
		if err := json.Unmarshal(body, &req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error()})
			return
		}
		text = []byte(req.Maze)
	}

	g, err := s.solver.Parse(bytes.NewReader(text))
	if err != nil {
		if mazeio.IsInputError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		s.logger.Error("parse failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "parse failed"})
		return
	}

	rep, err := s.solver.Solve(c.Request.Context(), g)
	if err != nil {
		if errors.Is(err, solver.ErrGridTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
			return
		}
		s.logger.Error("solve failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "solve failed"})
		return
	}

	resp := SolveResponse{Report: rep}
	if render {
		out, err := s.solver.Render(g, rep, arrows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "render failed"})
			return
		}
		resp.Rendered = out
	}

	c.JSON(http.StatusOK, resp)
}

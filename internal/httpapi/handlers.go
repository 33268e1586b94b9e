package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"aura-portal/internal/fixtures"
	"aura-portal/internal/usecase"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply      string `json:"reply"`
	ExchangeID string `json:"exchangeId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "AURA Portal API is running",
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"components": map[string]string{
			"api":       "operational",
			"assistant": "ready",
			"fixtures":  "loaded",
		},
	})
}

func (s *Server) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "request body must be JSON with a message field"})
	}

	out, err := s.chat.Relay(c.Request().Context(), usecase.RelayInput{Message: req.Message})
	if err != nil {
		return s.chatError(c, err)
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: out.Reply, ExchangeID: out.ExchangeID})
}

// chatError maps usecase error codes onto HTTP statuses. Provider-side
// failures collapse into one generic message.
func (s *Server) chatError(c echo.Context, err error) error {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		s.log.Error("chat relay failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: genericAssistantError})
	}

	switch ucErr.Code {
	case usecase.ErrorInvalidInput:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: invalidInputMessage(ucErr.Reason)})
	case usecase.ErrorRateLimited:
		s.log.Warn("chat relay rate limited", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: genericAssistantError})
	case usecase.ErrorUpstream:
		s.log.Error("chat relay upstream failure", zap.Error(err))
		return c.JSON(http.StatusBadGateway, errorResponse{Error: genericAssistantError})
	default:
		s.log.Error("chat relay failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: genericAssistantError})
	}
}

func invalidInputMessage(reason string) string {
	switch reason {
	case "message_too_long":
		return "message is too long"
	default:
		return "message is required"
	}
}

func (s *Server) handleListPatients(c echo.Context) error {
	return c.JSON(http.StatusOK, fixtures.Patients())
}

func (s *Server) handleGetPatient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "patient id must be an integer"})
	}
	p, ok := fixtures.PatientByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "patient not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleListJobs(c echo.Context) error {
	return c.JSON(http.StatusOK, fixtures.Jobs())
}

func (s *Server) handleGetJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "job id must be an integer"})
	}
	j, ok := fixtures.JobByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "job not found"})
	}
	return c.JSON(http.StatusOK, j)
}

func (s *Server) handleListCandidates(c echo.Context) error {
	return c.JSON(http.StatusOK, fixtures.Candidates())
}

func (s *Server) handleInteractionLookup(c echo.Context) error {
	a := c.QueryParam("a")
	b := c.QueryParam("b")
	if a == "" || b == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "query parameters a and b are required"})
	}

	in, ok := fixtures.InteractionBetween(a, b)
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"found": false})
	}
	return c.JSON(http.StatusOK, map[string]any{"found": true, "interaction": in})
}

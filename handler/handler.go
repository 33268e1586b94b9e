// Package handler adapts the assistant relay to AWS API Gateway proxy events
// for serverless deployments. The JSON bodies match the HTTP server's relay
// route exactly.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"aura-portal/internal/usecase"
)

const genericAssistantError = "assistant temporarily unavailable"

// ChatRelay is the usecase dependency of the handler.
type ChatRelay interface {
	Relay(ctx context.Context, in usecase.RelayInput) (usecase.RelayOutput, error)
}

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

// Handler serves the relay behind API Gateway.
type Handler struct {
	chat ChatRelay
}

func NewHandler(chat ChatRelay) (*Handler, error) {
	if chat == nil {
		return nil, errors.New("handler: chat relay must not be nil")
	}
	return &Handler{chat: chat}, nil
}

// Handle processes one API Gateway proxy request.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req chatRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: "request body must be JSON with a message field"}), nil
	}

	out, err := h.chat.Relay(ctx, usecase.RelayInput{Message: req.Message})
	if err != nil {
		return errorToResponse(err), nil
	}
	return jsonResponse(http.StatusOK, chatResponse{Reply: out.Reply, ExchangeID: out.ExchangeID}), nil
}

func errorToResponse(err error) events.APIGatewayProxyResponse {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		return jsonResponse(http.StatusInternalServerError, errorResponse{Error: genericAssistantError})
	}
	switch ucErr.Code {
	case usecase.ErrorInvalidInput:
		msg := "message is required"
		if ucErr.Reason == "message_too_long" {
			msg = "message is too long"
		}
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: msg})
	case usecase.ErrorRateLimited:
		return jsonResponse(http.StatusServiceUnavailable, errorResponse{Error: genericAssistantError})
	case usecase.ErrorUpstream:
		return jsonResponse(http.StatusBadGateway, errorResponse{Error: genericAssistantError})
	default:
		return jsonResponse(http.StatusInternalServerError, errorResponse{Error: genericAssistantError})
	}
}

func jsonResponse(status int, body any) events.APIGatewayProxyResponse {
	raw, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error":"internal error"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(raw),
	}
}

package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/ports"
	"github.com/valyala/fasthttp"
)

// scorer is the part of the similarity facade the handlers need.
type scorer interface {
	Compute(ctx context.Context, input, source string) domain.Result
	Tokenize(text string) []string
}

// SimilarityRequest represents a similarity computation request
type SimilarityRequest struct {
	Input     string  `json:"input"`
	Source    string  `json:"source"`
	Threshold float64 `json:"threshold,omitempty"`
}

// SimilarityResponse represents a similarity computation response
type SimilarityResponse struct {
	Score           float64                `json:"score"`
	Passed          bool                   `json:"passed"`
	Threshold       float64                `json:"threshold"`
	ForwardScore    float64                `json:"forward_score"`
	ReverseScore    float64                `json:"reverse_score"`
	FrequencyScore  float64                `json:"frequency_score"`
	InputWordCount  int                    `json:"input_word_count"`
	SourceWordCount int                    `json:"source_word_count"`
	ProcessingTime  string                 `json:"processing_time,omitempty"`
	Details         map[string]interface{} `json:"details,omitempty"`
}

// TokenizeRequest asks for the word sequence of a text
type TokenizeRequest struct {
	Text string `json:"text"`
}

// TokenizeResponse lists the words of a text
type TokenizeResponse struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// server routes requests to the similarity scorer.
type server struct {
	scorer         scorer
	logger         ports.Logger
	computeTimeout time.Duration
}

func newServer(s scorer, logger ports.Logger) *server {
	return &server{
		scorer:         s,
		logger:         logger,
		computeTimeout: 30 * time.Second,
	}
}

// handle is the main fasthttp request handler
func (s *server) handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "FuzzySimilarityServer")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/similarity":
		s.handleSimilarity(ctx)
	case "/tokenize":
		s.handleTokenize(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleSimilarity scores one input/source pair
func (s *server) handleSimilarity(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req SimilarityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	// Empty texts are valid and score 0.
	if req.Threshold < 0 || req.Threshold > 1 {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "threshold must be between 0 and 1")
		return
	}

	c, cancel := context.WithTimeout(context.Background(), s.computeTimeout)
	defer cancel()

	startTime := time.Now()
	result := s.scorer.Compute(c, req.Input, req.Source)

	if req.Threshold > 0 {
		result.Threshold = req.Threshold
		result.Passed = result.Score >= req.Threshold
		if result.Details != nil {
			result.Details["threshold"] = req.Threshold
		}
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, SimilarityResponse{
		Score:           result.Score,
		Passed:          result.Passed,
		Threshold:       result.Threshold,
		ForwardScore:    result.ForwardScore,
		ReverseScore:    result.ReverseScore,
		FrequencyScore:  result.FrequencyScore,
		InputWordCount:  result.InputWordCount,
		SourceWordCount: result.SourceWordCount,
		ProcessingTime:  time.Since(startTime).String(),
		Details:         result.Details,
	})
}

// handleTokenize returns the words the scorer would compare
func (s *server) handleTokenize(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req TokenizeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	words := s.scorer.Tokenize(req.Text)
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, TokenizeResponse{Words: words, Count: len(words)})
}

// writeJSONResponse writes a JSON response to the context
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abhisek/mathduel/internal/llm"
	"github.com/abhisek/mathduel/internal/metrics"
	"github.com/abhisek/mathduel/internal/solver"
)

// maxBody bounds the solve request body.
const maxBody = 1 << 20

// Purpose returns the event log purpose for solves of variant v.
func Purpose(v solver.Variant) string {
	return "solve-" + string(v)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	v, err := solver.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}

	var req solver.Request
	if err := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		metrics.ObserveSolve(string(v), metrics.OutcomeRejected, 0)
		return
	}
	problem := strings.TrimSpace(req.Problem)
	if problem == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "Problem must not be empty")
		metrics.ObserveSolve(string(v), metrics.OutcomeRejected, 0)
		return
	}

	prog, ok := s.programs[v]
	if !ok {
		writeDetail(w, http.StatusServiceUnavailable, notLoaded(v))
		metrics.ObserveSolve(string(v), metrics.OutcomeRejected, 0)
		return
	}

	ctx := llm.WithPurpose(r.Context(), Purpose(v))
	ctx = llm.WithRequestID(ctx, middleware.GetReqID(r.Context()))

	start := time.Now()
	out, err := prog.Run(ctx, s.provider, problem, s.settings)
	elapsed := time.Since(start)
	if err != nil {
		status, detail := solveFailure(v, err)
		s.logger.Warn().
			Err(err).
			Str("variant", string(v)).
			Stringer("failure", llm.Classify(err)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("solve failed")
		metrics.ObserveSolve(string(v), metrics.OutcomeError, elapsed)
		writeDetail(w, status, detail)
		return
	}

	metrics.ObserveSolve(string(v), metrics.OutcomeOK, elapsed)
	writeJSON(w, http.StatusOK, solver.Result{
		Reasoning:     out.Reasoning,
		Answer:        out.Answer,
		ExecutionTime: solver.SecondsOf(elapsed),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	_, base := s.programs[solver.VariantBase]
	_, optimized := s.programs[solver.VariantOptimized]
	writeJSON(w, http.StatusOK, solver.Status{
		BaseLoaded:      base,
		OptimizedLoaded: optimized,
	})
}

func notLoaded(v solver.Variant) string {
	name := string(v)
	return strings.ToUpper(name[:1]) + name[1:] + " model not loaded"
}

// solveFailure maps a program error to a response status and detail.
func solveFailure(v solver.Variant, err error) (int, string) {
	model := "The " + string(v) + " model"
	switch llm.Classify(err) {
	case llm.FailureTimeout:
		return http.StatusGatewayTimeout, model + " timed out"
	case llm.FailureRateLimited:
		return http.StatusServiceUnavailable, model + " is rate limited, try again shortly"
	case llm.FailureTruncated:
		return http.StatusBadGateway, model + " ran out of tokens before answering"
	case llm.FailureUnreadable:
		return http.StatusBadGateway, model + " returned an unreadable answer"
	default:
		return http.StatusBadGateway, model + " is unavailable"
	}
}

type detailBody struct {
	Detail string `json:"detail"`
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailBody{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, `{"detail":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

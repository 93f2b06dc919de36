package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	playground "github.com/go-playground/validator/v10"

	"github.com/nutrikit/trophe/pkg/defaults"
	"github.com/nutrikit/trophe/pkg/errors"
	"github.com/nutrikit/trophe/pkg/optimize"
	"github.com/nutrikit/trophe/pkg/plan"
	"github.com/nutrikit/trophe/pkg/serializer"
)

// maxPlanBody caps plan request bodies. The request is a handful of
// integers; anything near the cap is abuse.
const maxPlanBody = 1 << 20

var validate = playground.New(playground.WithRequiredStructEnabled())

// handlePlan handles POST /v1/plan
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPlanBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req plan.Request
	if err := dec.Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Malformed JSON body", false, map[string]any{"error": err.Error()})
		return
	}

	req = req.Normalize()
	if err := validate.Struct(req); err != nil {
		WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid plan request", false, map[string]any{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.PlanHandlerTimeout)
	defer cancel()

	doc, err := s.builder.Build(ctx, req)
	if err != nil {
		s.writePlanError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, doc)
}

// writePlanError maps pipeline failures to API error responses.
func (s *Server) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case stderrors.Is(err, optimize.ErrTooManyCandidates):
		WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			err.Error(), false, nil)
	case stderrors.Is(err, context.DeadlineExceeded):
		WriteError(w, r, http.StatusGatewayTimeout, errors.ErrCodeTimeout,
			"Plan generation timed out", true, nil)
	default:
		requestID, _ := r.Context().Value(contextKeyRequestID).(string)
		slog.Error("plan generation failed",
			"requestID", requestID,
			"error", err,
		)
		WriteError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
			"Plan generation failed", true, nil)
	}
}

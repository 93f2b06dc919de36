package server

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nutrikit/trophe/pkg/defaults"
	"github.com/nutrikit/trophe/pkg/errors"
	"github.com/nutrikit/trophe/pkg/plan"
	"github.com/nutrikit/trophe/pkg/serializer"
)

// handleFoods handles GET /v1/foods?min=&max=&limit=
func (s *Server) handleFoods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	req, err := parseFoodsRequest(r.URL.Query())
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			err.Error(), false, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.PlanHandlerTimeout)
	defer cancel()

	doc, err := s.builder.Foods(ctx, req)
	if err != nil {
		s.writePlanError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(defaults.FoodsCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, doc)
}

// parseFoodsRequest builds a filter-only plan request from query
// parameters. Missing parameters fall back to the planner defaults.
func parseFoodsRequest(q url.Values) (plan.Request, error) {
	var req plan.Request

	params := []struct {
		name string
		dst  *int
	}{
		{"min", &req.MinKCal},
		{"max", &req.MaxKCal},
		{"limit", &req.MaxCandidates},
	}
	for _, p := range params {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return plan.Request{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"query parameter must be a non-negative integer",
				map[string]any{"param": p.name, "value": raw})
		}
		*p.dst = v
	}

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return plan.Request{}, err
	}
	return req, nil
}

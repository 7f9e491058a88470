package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jobfeedhq/jobfeed/internal/model"
	"github.com/jobfeedhq/jobfeed/internal/query"
)

// JobsHandler serves the /jobs routes off the query engine.
type JobsHandler struct {
	Engine *query.Engine
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.Engine.ListAll(r.Context())
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h JobsHandler) Search(w http.ResponseWriter, r *http.Request) {
	crit, err := criteriaFromQuery(r)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	result, err := h.Engine.Search(r.Context(), crit)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")

	job, err := h.Engine.GetByID(r.Context(), id)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// criteriaFromQuery builds typed criteria from the query string. Boolean
// params are tri-state: absent means unfiltered, anything else must parse.
func criteriaFromQuery(r *http.Request) (query.Criteria, error) {
	q := r.URL.Query()
	crit := query.Criteria{
		Query:           q.Get("query"),
		Location:        q.Get("location"),
		ExperienceLevel: q.Get("experience_level"),
	}

	for _, p := range []struct {
		name string
		dst  **bool
	}{
		{"remote", &crit.Remote},
		{"visa_sponsorship", &crit.VisaSponsorship},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return query.Criteria{}, &model.InvalidArgumentError{Field: p.name, Reason: "must be true or false"}
		}
		*p.dst = &v
	}

	return crit, nil
}

// MetaHandler serves the distinct-value routes.
type MetaHandler struct {
	Engine *query.Engine
}

func (h MetaHandler) Companies(w http.ResponseWriter, r *http.Request) {
	result, err := h.Engine.Companies(r.Context())
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h MetaHandler) Technologies(w http.ResponseWriter, r *http.Request) {
	result, err := h.Engine.Technologies(r.Context())
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

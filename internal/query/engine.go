// Package query answers structured queries against the job store:
// search/filter, lookup by id, and distinct-value extraction.
package query

import (
	"context"
	"sort"
	"strings"

	"github.com/jobfeedhq/jobfeed/internal/model"
	"github.com/jobfeedhq/jobfeed/internal/store"
)

// Criteria are the optional search filters. Nil booleans impose no
// constraint, which is distinct from filtering on false.
type Criteria struct {
	Query           string
	Location        string
	Remote          *bool
	VisaSponsorship *bool
	ExperienceLevel string
}

// SearchResult is the wire shape of a search response.
type SearchResult struct {
	TotalResults int         `json:"total_results"`
	Jobs         []model.Job `json:"jobs"`
}

// ListResult is the wire shape of a list-all response.
type ListResult struct {
	TotalJobs int         `json:"total_jobs"`
	Jobs      []model.Job `json:"jobs"`
}

// CompaniesResult is the wire shape of a distinct-companies response.
type CompaniesResult struct {
	TotalCompanies int      `json:"total_companies"`
	Companies      []string `json:"companies"`
}

// TechnologiesResult is the wire shape of a distinct-technologies response.
type TechnologiesResult struct {
	TotalTechnologies int      `json:"total_technologies"`
	Technologies      []string `json:"technologies"`
}

// Engine runs pure reads over the store. Every operation loads the store
// first if it is still empty; after that load there is no state to mutate.
type Engine struct {
	store *store.Store
}

// NewEngine creates an engine over the given store.
func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s}
}

// Search returns the records matching all provided filters, in store order.
func (e *Engine) Search(ctx context.Context, c Criteria) (SearchResult, error) {
	if err := e.store.Load(ctx); err != nil {
		return SearchResult{}, err
	}

	matched := []model.Job{}
	for _, job := range e.store.All() {
		if matches(job, c) {
			matched = append(matched, job)
		}
	}

	return SearchResult{TotalResults: len(matched), Jobs: matched}, nil
}

// matches applies the criteria to one record. Filters are ANDed; empty
// string filters and nil booleans pass everything.
func matches(job model.Job, c Criteria) bool {
	if c.Query != "" {
		haystack := strings.ToLower(job.Title + " " + job.Company + " " + job.Location + " " + strings.Join(job.TechStack, " "))
		if !strings.Contains(haystack, strings.ToLower(c.Query)) {
			return false
		}
	}

	if c.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(c.Location)) {
		return false
	}

	if c.Remote != nil && job.Remote != *c.Remote {
		return false
	}

	if c.VisaSponsorship != nil && job.VisaSponsorship != *c.VisaSponsorship {
		return false
	}

	if c.ExperienceLevel != "" && !strings.Contains(strings.ToLower(job.ExperienceLevel), strings.ToLower(c.ExperienceLevel)) {
		return false
	}

	return true
}

// GetByID returns the first record whose id equals the given string
// exactly (case-sensitive). A miss is a NotFoundError, an empty id an
// InvalidArgumentError.
func (e *Engine) GetByID(ctx context.Context, id string) (model.Job, error) {
	if id == "" {
		return model.Job{}, &model.InvalidArgumentError{Field: "job_id", Reason: "must not be empty"}
	}

	if err := e.store.Load(ctx); err != nil {
		return model.Job{}, err
	}

	for _, job := range e.store.All() {
		if job.ID == id {
			return job, nil
		}
	}

	return model.Job{}, &model.NotFoundError{ID: id}
}

// ListAll returns every record in store order.
func (e *Engine) ListAll(ctx context.Context) (ListResult, error) {
	if err := e.store.Load(ctx); err != nil {
		return ListResult{}, err
	}

	jobs := e.store.All()
	if jobs == nil {
		jobs = []model.Job{}
	}
	return ListResult{TotalJobs: len(jobs), Jobs: jobs}, nil
}

// Companies returns the distinct company names, sorted ascending.
func (e *Engine) Companies(ctx context.Context) (CompaniesResult, error) {
	if err := e.store.Load(ctx); err != nil {
		return CompaniesResult{}, err
	}

	seen := make(map[string]struct{})
	companies := []string{}
	for _, job := range e.store.All() {
		if _, ok := seen[job.Company]; ok {
			continue
		}
		seen[job.Company] = struct{}{}
		companies = append(companies, job.Company)
	}
	sort.Strings(companies)

	return CompaniesResult{TotalCompanies: len(companies), Companies: companies}, nil
}

// Technologies returns the distinct tech-stack entries across all
// records, sorted ascending.
func (e *Engine) Technologies(ctx context.Context) (TechnologiesResult, error) {
	if err := e.store.Load(ctx); err != nil {
		return TechnologiesResult{}, err
	}

	seen := make(map[string]struct{})
	techs := []string{}
	for _, job := range e.store.All() {
		for _, tech := range job.TechStack {
			if _, ok := seen[tech]; ok {
				continue
			}
			seen[tech] = struct{}{}
			techs = append(techs, tech)
		}
	}
	sort.Strings(techs)

	return TechnologiesResult{TotalTechnologies: len(techs), Technologies: techs}, nil
}

package query

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jobfeedhq/jobfeed/internal/model"
	"github.com/jobfeedhq/jobfeed/internal/store"
)

type fakeFetcher struct {
	jobs []model.Job
	err  error
}

func (f *fakeFetcher) FetchJobs(ctx context.Context) ([]model.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func newEngine(jobs ...model.Job) *Engine {
	return NewEngine(store.New(&fakeFetcher{jobs: jobs}))
}

func boolPtr(v bool) *bool { return &v }

var acmeJob = model.Job{
	ID:              "1",
	Title:           "Backend Engineer",
	Company:         "Acme",
	Location:        "Remote",
	Remote:          true,
	VisaSponsorship: false,
	ExperienceLevel: "Senior",
	TechStack:       []string{"Go", "Postgres"},
}

func TestSearch(t *testing.T) {
	jobs := []model.Job{
		acmeJob,
		{
			ID:              "2",
			Title:           "Frontend Developer",
			Company:         "Globex",
			Location:        "Berlin, Germany",
			Remote:          false,
			VisaSponsorship: true,
			ExperienceLevel: "Mid-Senior",
			TechStack:       []string{"TypeScript", "React"},
		},
		{
			ID:              "3",
			Title:           "Platform Engineer",
			Company:         "Initech",
			Location:        "Remote - Europe",
			Remote:          true,
			VisaSponsorship: true,
			ExperienceLevel: "Mid",
			TechStack:       []string{"Go", "Kubernetes"},
		},
	}

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{
			name:     "no filters returns everything in store order",
			criteria: Criteria{},
			wantIDs:  []string{"1", "2", "3"},
		},
		{
			name:     "query matches company case-insensitively",
			criteria: Criteria{Query: "acme"},
			wantIDs:  []string{"1"},
		},
		{
			name:     "query matches tech stack",
			criteria: Criteria{Query: "kubernetes"},
			wantIDs:  []string{"3"},
		},
		{
			name:     "query matches title substring",
			criteria: Criteria{Query: "engineer"},
			wantIDs:  []string{"1", "3"},
		},
		{
			name:     "query with no match",
			criteria: Criteria{Query: "haskell"},
			wantIDs:  []string{},
		},
		{
			name:     "location is a substring filter",
			criteria: Criteria{Location: "remote"},
			wantIDs:  []string{"1", "3"},
		},
		{
			name:     "remote false excludes remote jobs",
			criteria: Criteria{Remote: boolPtr(false)},
			wantIDs:  []string{"2"},
		},
		{
			name:     "filters are conjunctive",
			criteria: Criteria{Remote: boolPtr(true), VisaSponsorship: boolPtr(true)},
			wantIDs:  []string{"3"},
		},
		{
			name:     "experience level substring",
			criteria: Criteria{ExperienceLevel: "senior"},
			wantIDs:  []string{"1", "2"},
		},
		{
			name:     "experience exact-ish with conjunction",
			criteria: Criteria{ExperienceLevel: "mid", Remote: boolPtr(true)},
			wantIDs:  []string{"3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(jobs...)
			got, err := e.Search(context.Background(), tt.criteria)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			gotIDs := []string{}
			for _, j := range got.Jobs {
				gotIDs = append(gotIDs, j.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("Search ids = %v, want %v", gotIDs, tt.wantIDs)
			}
			if got.TotalResults != len(tt.wantIDs) {
				t.Errorf("TotalResults = %d, want %d", got.TotalResults, len(tt.wantIDs))
			}
		})
	}
}

func TestSearch_EmptyCriteriaEqualsListAll(t *testing.T) {
	e := newEngine(acmeJob, model.Job{ID: "2", Title: "SRE", Company: "Globex"})

	searched, err := e.Search(context.Background(), Criteria{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	listed, err := e.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}

	if !reflect.DeepEqual(searched.Jobs, listed.Jobs) {
		t.Errorf("Search({}) jobs = %v, want ListAll jobs %v", searched.Jobs, listed.Jobs)
	}
	if searched.TotalResults != listed.TotalJobs {
		t.Errorf("TotalResults = %d, TotalJobs = %d", searched.TotalResults, listed.TotalJobs)
	}
}

func TestSearch_EveryResultContainsQuery(t *testing.T) {
	e := newEngine(
		acmeJob,
		model.Job{ID: "2", Title: "Go Developer", Company: "Globex", Location: "Berlin"},
		model.Job{ID: "3", Title: "Data Analyst", Company: "Initech", Location: "NYC", TechStack: []string{"Python"}},
	)

	got, err := e.Search(context.Background(), Criteria{Query: "go"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got.TotalResults == 0 {
		t.Fatal("expected matches for query \"go\"")
	}
	for _, j := range got.Jobs {
		if j.ID == "3" {
			t.Errorf("job %s does not contain the query in any searched field", j.ID)
		}
	}
}

func TestGetByID(t *testing.T) {
	e := newEngine(acmeJob)

	job, err := e.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetByID(1): %v", err)
	}
	if job.ID != "1" || job.Company != "Acme" {
		t.Errorf("GetByID(1) = %+v", job)
	}

	_, err = e.GetByID(context.Background(), "99")
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("GetByID(99) err = %v, want NotFoundError", err)
	}
	if notFound.ID != "99" {
		t.Errorf("NotFoundError.ID = %q, want 99", notFound.ID)
	}
}

func TestGetByID_CaseSensitive(t *testing.T) {
	e := newEngine(model.Job{ID: "job-1", Title: "Backend Engineer"})

	if _, err := e.GetByID(context.Background(), "job-1"); err != nil {
		t.Fatalf("GetByID(job-1): %v", err)
	}

	_, err := e.GetByID(context.Background(), "JOB-1")
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("GetByID(JOB-1) err = %v, want NotFoundError", err)
	}
}

func TestGetByID_EmptyID(t *testing.T) {
	e := newEngine(acmeJob)

	_, err := e.GetByID(context.Background(), "")
	var invalid *model.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("GetByID(\"\") err = %v, want InvalidArgumentError", err)
	}
}

func TestCompanies(t *testing.T) {
	e := newEngine(
		model.Job{ID: "1", Company: "Globex"},
		model.Job{ID: "2", Company: "Acme"},
		model.Job{ID: "3", Company: "Globex"},
	)

	got, err := e.Companies(context.Background())
	if err != nil {
		t.Fatalf("Companies: %v", err)
	}
	want := []string{"Acme", "Globex"}
	if !reflect.DeepEqual(got.Companies, want) {
		t.Errorf("Companies = %v, want %v", got.Companies, want)
	}
	if got.TotalCompanies != 2 {
		t.Errorf("TotalCompanies = %d, want 2", got.TotalCompanies)
	}
}

func TestTechnologies(t *testing.T) {
	e := newEngine(
		model.Job{ID: "1", TechStack: []string{"Go", "Postgres"}},
		model.Job{ID: "2", TechStack: []string{"Go", "React"}},
	)

	got, err := e.Technologies(context.Background())
	if err != nil {
		t.Fatalf("Technologies: %v", err)
	}
	want := []string{"Go", "Postgres", "React"}
	if !reflect.DeepEqual(got.Technologies, want) {
		t.Errorf("Technologies = %v, want %v", got.Technologies, want)
	}
	if got.TotalTechnologies != 3 {
		t.Errorf("TotalTechnologies = %d, want 3", got.TotalTechnologies)
	}
}

func TestEngine_PropagatesLoadFailure(t *testing.T) {
	src := &model.DataSourceError{Source: "http://feed", Err: errors.New("boom")}
	e := NewEngine(store.New(&fakeFetcher{err: src}))

	_, err := e.Search(context.Background(), Criteria{})
	var dsErr *model.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("Search err = %v, want DataSourceError", err)
	}
}

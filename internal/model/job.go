package model

import "context"

// Job is a single posting from the feed. JSON tags mirror the feed's
// wire format, which is snake_case.
type Job struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Remote          bool     `json:"remote"`
	VisaSponsorship bool     `json:"visa_sponsorship"`
	ExperienceLevel string   `json:"experience_level"` // free text, e.g. "Entry", "Mid-Senior"
	TechStack       []string `json:"tech_stack"`
}

// Fetcher retrieves the full posting set from the upstream feed.
type Fetcher interface {
	FetchJobs(ctx context.Context) ([]Job, error)
}

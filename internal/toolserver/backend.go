package toolserver

import (
	"context"

	"github.com/jobfeedhq/jobfeed/internal/query"
)

// Backend is what the tool surface needs from a job source. The serve
// command backs it with the local query engine; the proxy command backs
// it with a deployed HTTP API. Results are rendered as indented JSON,
// so methods return whatever marshals to the right shape.
type Backend interface {
	Search(ctx context.Context, c query.Criteria) (any, error)
	JobByID(ctx context.Context, id string) (any, error)
	ListAll(ctx context.Context) (any, error)
	Companies(ctx context.Context) (any, error)
	Technologies(ctx context.Context) (any, error)
}

// EngineBackend serves tool calls straight from the local query engine.
type EngineBackend struct {
	engine *query.Engine
}

// NewEngineBackend wraps a query engine as a tool backend.
func NewEngineBackend(engine *query.Engine) *EngineBackend {
	return &EngineBackend{engine: engine}
}

func (b *EngineBackend) Search(ctx context.Context, c query.Criteria) (any, error) {
	return b.engine.Search(ctx, c)
}

func (b *EngineBackend) JobByID(ctx context.Context, id string) (any, error) {
	return b.engine.GetByID(ctx, id)
}

func (b *EngineBackend) ListAll(ctx context.Context) (any, error) {
	return b.engine.ListAll(ctx)
}

func (b *EngineBackend) Companies(ctx context.Context) (any, error) {
	return b.engine.Companies(ctx)
}

func (b *EngineBackend) Technologies(ctx context.Context) (any, error) {
	return b.engine.Technologies(ctx)
}

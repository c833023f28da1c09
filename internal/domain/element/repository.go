package element

import "context"

// Repository owns the element collection. Each Create is an
// independent insert; the record is durable once the call returns.
type Repository interface {
	Create(ctx context.Context, el Element) (Element, error)
}

//go:generate mockery --name=FamilyRepository --output=../mocks --case=underscore
package domain

import "context"

// FamilyRepository is the name→Person registry. It is bulk-loaded once at
// startup and read-only afterwards. List returns members in insertion order;
// the birthday calendar depends on that ordering.
type FamilyRepository interface {
	Add(ctx context.Context, p *Person) error
	Get(ctx context.Context, name string) (*Person, error)
	List(ctx context.Context) ([]*Person, error)
}

//go:generate mockery --name=FamilyUsecase --output=../mocks --case=underscore
package domain

import (
	"context"
	"time"
)

// CalendarEntry is one birthday-calendar slot: every member born on
// Month/Day, regardless of year. Names keep registry insertion order.
type CalendarEntry struct {
	Month time.Month
	Day   int
	Names []string
}

// FamilyUsecase is the query surface the console layer works against.
// Relationship queries take an already-resolved Person and return the same
// underlying instances, never copies.
type FamilyUsecase interface {
	Describe(ctx context.Context, name string) (string, error)
	Get(ctx context.Context, name string) (*Person, error)
	Members(ctx context.Context) ([]*Person, error)

	Parents(p *Person) []*Person
	Grandparents(p *Person) []*Person
	Siblings(p *Person) []*Person
	Cousins(p *Person) []*Person
	ImmediateFamily(p *Person) []*Person
	ExtendedFamily(p *Person) []*Person

	BirthdayCalendar(ctx context.Context) ([]CalendarEntry, error)
	AverageAgeAtDeath(ctx context.Context) (float64, error)
	ChildrenStatistics(ctx context.Context) (map[string]int, float64, error)
}

package usecase

import (
	"context"

	"famtree/internal/domain"
)

type familyUC struct{ repo domain.FamilyRepository }

func NewFamilyUC(r domain.FamilyRepository) domain.FamilyUsecase { return &familyUC{repo: r} }

func (u *familyUC) Describe(ctx context.Context, name string) (string, error) {
	p, err := u.repo.Get(ctx, name)
	if err != nil {
		return "", err
	}
	return p.Describe(), nil
}

func (u *familyUC) Get(ctx context.Context, name string) (*domain.Person, error) {
	return u.repo.Get(ctx, name)
}

func (u *familyUC) Members(ctx context.Context) ([]*domain.Person, error) {
	return u.repo.List(ctx)
}

func (u *familyUC) Parents(p *domain.Person) []*domain.Person      { return Parents(p) }
func (u *familyUC) Grandparents(p *domain.Person) []*domain.Person { return Grandparents(p) }
func (u *familyUC) Siblings(p *domain.Person) []*domain.Person     { return Siblings(p) }
func (u *familyUC) Cousins(p *domain.Person) []*domain.Person      { return Cousins(p) }

func (u *familyUC) ImmediateFamily(p *domain.Person) []*domain.Person {
	return ImmediateFamily(p)
}

func (u *familyUC) ExtendedFamily(p *domain.Person) []*domain.Person {
	return ExtendedFamily(p)
}

func (u *familyUC) BirthdayCalendar(ctx context.Context) ([]domain.CalendarEntry, error) {
	members, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BirthdayCalendar(members), nil
}

func (u *familyUC) AverageAgeAtDeath(ctx context.Context) (float64, error) {
	members, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return AverageAgeAtDeath(members), nil
}

func (u *familyUC) ChildrenStatistics(ctx context.Context) (map[string]int, float64, error) {
	members, err := u.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	counts, avg := ChildrenStatistics(members)
	return counts, avg, nil
}

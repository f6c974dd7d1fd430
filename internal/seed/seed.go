package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"famtree/internal/domain"
	"famtree/internal/repository"
)

// Member is one seed record. Dates are YYYY-MM-DD strings; Parents and
// Spouse refer to other records by name and are resolved after every person
// exists.
type Member struct {
	Name    string   `validate:"required"`
	Birth   string   `validate:"required,datetime=2006-01-02"`
	Death   string   `validate:"omitempty,datetime=2006-01-02"`
	Parents []string `validate:"omitempty,dive,required"`
	Spouse  string
}

// Load validates the records, constructs every person, registers them in a
// fresh repository and then wires parent and spouse links by name. Duplicate
// names, unknown references and malformed links all fail the load.
func Load(ctx context.Context, members []Member) (*repository.MemoryFamilyRepo, error) {
	val := validator.New()
	repo := repository.NewMemoryFamilyRepo()

	for _, m := range members {
		if err := val.Struct(m); err != nil {
			return nil, fmt.Errorf("seed record %q: %w", m.Name, err)
		}
		p, err := newPerson(m)
		if err != nil {
			return nil, fmt.Errorf("seed record %q: %w", m.Name, err)
		}
		if err := repo.Add(ctx, p); err != nil {
			return nil, fmt.Errorf("seed record %q: %w", m.Name, err)
		}
	}

	for _, m := range members {
		if err := link(ctx, repo, m); err != nil {
			return nil, fmt.Errorf("seed record %q: %w", m.Name, err)
		}
	}
	return repo, nil
}

func newPerson(m Member) (*domain.Person, error) {
	birth, err := time.Parse(domain.DateLayout, m.Birth)
	if err != nil {
		return nil, err
	}
	if m.Death == "" {
		return domain.NewPerson(m.Name, birth), nil
	}
	death, err := time.Parse(domain.DateLayout, m.Death)
	if err != nil {
		return nil, err
	}
	return domain.NewDeceasedPerson(m.Name, birth, death)
}

func link(ctx context.Context, repo *repository.MemoryFamilyRepo, m Member) error {
	p, err := repo.Get(ctx, m.Name)
	if err != nil {
		return err
	}
	if len(m.Parents) > 0 {
		parents := make([]*domain.Person, 0, len(m.Parents))
		for _, name := range m.Parents {
			parent, err := repo.Get(ctx, name)
			if err != nil {
				return fmt.Errorf("parent %q: %w", name, err)
			}
			parents = append(parents, parent)
		}
		if err := p.LinkAsChildOf(parents...); err != nil {
			return err
		}
	}
	if m.Spouse != "" {
		spouse, err := repo.Get(ctx, m.Spouse)
		if err != nil {
			return fmt.Errorf("spouse %q: %w", m.Spouse, err)
		}
		if err := p.SetSpouse(spouse); err != nil {
			return err
		}
	}
	return nil
}

// SampleFamily is the fixed dataset the tool ships with: three generations
// of the Emmersohn and Singh families.
func SampleFamily() []Member {
	return []Member{
		{Name: "Cornelia Emmersohn", Birth: "1968-05-20", Parents: []string{"Anna Singh", "Raj Singh"}, Spouse: "Otto Emmersohn"},
		{Name: "Otto Emmersohn", Birth: "1965-08-15", Death: "2020-04-10", Parents: []string{"Maria Müller", "Hans Emmersohn"}},
		{Name: "Anna Singh", Birth: "1945-04-10", Death: "2015-03-20"},
		{Name: "Raj Singh", Birth: "1942-06-05", Death: "2010-11-05"},
		{Name: "Maria Müller", Birth: "1943-06-05", Death: "2005-09-15"},
		{Name: "Hans Emmersohn", Birth: "1940-03-22", Death: "2012-07-10"},
		{Name: "Lucas Emmersohn", Birth: "1992-11-12", Parents: []string{"Cornelia Emmersohn", "Otto Emmersohn"}},
		{Name: "Emma Emmersohn", Birth: "1995-02-28", Parents: []string{"Cornelia Emmersohn", "Otto Emmersohn"}},
	}
}

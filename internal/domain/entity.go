package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Person is one member of the family graph. Identity (name, dates) is fixed
// at construction; parent/child/spouse links change only through the Link*
// and SetSpouse operations so both sides always stay consistent.
type Person struct {
	name      string
	birthDate time.Time
	deathDate *time.Time

	parents  []*Person
	children []*Person
	spouse   *Person
}

func NewPerson(name string, birthDate time.Time) *Person {
	return &Person{name: name, birthDate: birthDate}
}

func NewDeceasedPerson(name string, birthDate, deathDate time.Time) (*Person, error) {
	if deathDate.Before(birthDate) {
		return nil, ErrDeathBeforeBirth
	}
	return &Person{name: name, birthDate: birthDate, deathDate: &deathDate}, nil
}

func (p *Person) Name() string         { return p.name }
func (p *Person) BirthDate() time.Time { return p.birthDate }
func (p *Person) Parents() []*Person   { return p.parents }
func (p *Person) Children() []*Person  { return p.children }
func (p *Person) Spouse() *Person      { return p.spouse }
func (p *Person) Deceased() bool       { return p.deathDate != nil }

// DeathDate reports the death date; ok is false for a living person.
func (p *Person) DeathDate() (time.Time, bool) {
	if p.deathDate == nil {
		return time.Time{}, false
	}
	return *p.deathDate, true
}

// LinkAsChildOf sets this person's parent list and adds the person to each
// parent's child list. A person can be linked under parents once; linking
// again would duplicate back-links, so it is rejected.
func (p *Person) LinkAsChildOf(parents ...*Person) error {
	if len(p.parents) != 0 {
		return ErrAlreadyLinked
	}
	for _, parent := range parents {
		if parent == nil {
			return ErrNilPerson
		}
		if parent == p {
			return ErrSelfLink
		}
		if isAncestorOf(p, parent) {
			return ErrLinkCycle
		}
	}
	p.parents = append(p.parents, parents...)
	for _, parent := range parents {
		parent.children = append(parent.children, p)
	}
	return nil
}

// LinkAsParentOf is the symmetric operation: sets this person's child list
// and adds the person to each child's parent list.
func (p *Person) LinkAsParentOf(children ...*Person) error {
	if len(p.children) != 0 {
		return ErrAlreadyLinked
	}
	for _, child := range children {
		if child == nil {
			return ErrNilPerson
		}
		if child == p {
			return ErrSelfLink
		}
		if isAncestorOf(child, p) {
			return ErrLinkCycle
		}
	}
	p.children = append(p.children, children...)
	for _, child := range children {
		child.parents = append(child.parents, p)
	}
	return nil
}

// SetSpouse links both sides in one call. Re-linking the same pair is a
// no-op; a different existing spouse on either side is rejected.
func (p *Person) SetSpouse(other *Person) error {
	if other == nil {
		return ErrNilPerson
	}
	if other == p {
		return ErrSelfLink
	}
	if p.spouse != nil && p.spouse != other {
		return ErrSpouseTaken
	}
	if other.spouse != nil && other.spouse != p {
		return ErrSpouseTaken
	}
	p.spouse = other
	other.spouse = p
	return nil
}

// Describe renders the member line, branching on the living/deceased variant.
func (p *Person) Describe() string {
	if p.deathDate != nil {
		return fmt.Sprintf("Name: %s, Birth Date: %s, Death Date: %s",
			p.name, p.birthDate.Format(DateLayout), p.deathDate.Format(DateLayout))
	}
	return fmt.Sprintf("Name: %s, Birth Date: %s (Alive)", p.name, p.birthDate.Format(DateLayout))
}

// isAncestorOf walks candidate's ancestry looking for p.
func isAncestorOf(p, candidate *Person) bool {
	for _, parent := range candidate.parents {
		if parent == p || isAncestorOf(p, parent) {
			return true
		}
	}
	return false
}

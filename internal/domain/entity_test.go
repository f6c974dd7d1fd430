package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDeceasedPerson(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		p, err := NewDeceasedPerson("Otto Emmersohn", date(1965, 8, 15), date(2020, 4, 10))
		require.NoError(t, err)
		assert.True(t, p.Deceased())
		d, ok := p.DeathDate()
		require.True(t, ok)
		assert.Equal(t, date(2020, 4, 10), d)
	})

	t.Run("death_before_birth", func(t *testing.T) {
		_, err := NewDeceasedPerson("X", date(1990, 1, 2), date(1990, 1, 1))
		require.ErrorIs(t, err, ErrDeathBeforeBirth)
	})

	t.Run("death_on_birth_day_allowed", func(t *testing.T) {
		_, err := NewDeceasedPerson("X", date(1990, 1, 1), date(1990, 1, 1))
		require.NoError(t, err)
	})
}

func TestPerson_Describe(t *testing.T) {
	living := NewPerson("Cornelia Emmersohn", date(1968, 5, 20))
	assert.Equal(t, "Name: Cornelia Emmersohn, Birth Date: 1968-05-20 (Alive)", living.Describe())

	deceased, err := NewDeceasedPerson("Otto Emmersohn", date(1965, 8, 15), date(2020, 4, 10))
	require.NoError(t, err)
	assert.Equal(t, "Name: Otto Emmersohn, Birth Date: 1965-08-15, Death Date: 2020-04-10", deceased.Describe())

	living2 := NewPerson("Lucas Emmersohn", date(1992, 11, 12))
	d, ok := living2.DeathDate()
	assert.False(t, ok)
	assert.True(t, d.IsZero())
}

func TestPerson_LinkAsChildOf(t *testing.T) {
	t.Run("sets_back_links", func(t *testing.T) {
		child := NewPerson("C", date(1992, 11, 12))
		mother := NewPerson("M", date(1968, 5, 20))
		father := NewPerson("F", date(1965, 8, 15))

		require.NoError(t, child.LinkAsChildOf(mother, father))

		require.Equal(t, []*Person{mother, father}, child.Parents())
		assert.Equal(t, []*Person{child}, mother.Children())
		assert.Equal(t, []*Person{child}, father.Children())
	})

	t.Run("second_call_rejected", func(t *testing.T) {
		child := NewPerson("C", date(1992, 11, 12))
		mother := NewPerson("M", date(1968, 5, 20))
		require.NoError(t, child.LinkAsChildOf(mother))

		err := child.LinkAsChildOf(NewPerson("F", date(1965, 8, 15)))
		require.ErrorIs(t, err, ErrAlreadyLinked)
		// no partial back-links from the rejected call
		assert.Len(t, mother.Children(), 1)
	})

	t.Run("self_rejected", func(t *testing.T) {
		p := NewPerson("P", date(1970, 1, 1))
		require.ErrorIs(t, p.LinkAsChildOf(p), ErrSelfLink)
	})

	t.Run("nil_rejected", func(t *testing.T) {
		p := NewPerson("P", date(1970, 1, 1))
		require.ErrorIs(t, p.LinkAsChildOf(nil), ErrNilPerson)
	})

	t.Run("cycle_rejected", func(t *testing.T) {
		grandparent := NewPerson("G", date(1940, 1, 1))
		parent := NewPerson("P", date(1965, 1, 1))
		child := NewPerson("C", date(1990, 1, 1))
		require.NoError(t, parent.LinkAsChildOf(grandparent))
		require.NoError(t, child.LinkAsChildOf(parent))

		// G under C would make G its own ancestor
		require.ErrorIs(t, grandparent.LinkAsChildOf(child), ErrLinkCycle)
	})
}

func TestPerson_LinkAsParentOf(t *testing.T) {
	t.Run("sets_back_links", func(t *testing.T) {
		parent := NewPerson("P", date(1968, 5, 20))
		a := NewPerson("A", date(1992, 11, 12))
		b := NewPerson("B", date(1995, 2, 28))

		require.NoError(t, parent.LinkAsParentOf(a, b))

		require.Equal(t, []*Person{a, b}, parent.Children())
		assert.Equal(t, []*Person{parent}, a.Parents())
		assert.Equal(t, []*Person{parent}, b.Parents())
	})

	t.Run("appends_to_existing_parents", func(t *testing.T) {
		// second parent of the same children, as in the seed family
		mother := NewPerson("M", date(1968, 5, 20))
		father := NewPerson("F", date(1965, 8, 15))
		a := NewPerson("A", date(1992, 11, 12))

		require.NoError(t, mother.LinkAsParentOf(a))
		require.NoError(t, father.LinkAsParentOf(a))

		assert.Equal(t, []*Person{mother, father}, a.Parents())
	})

	t.Run("second_call_rejected", func(t *testing.T) {
		parent := NewPerson("P", date(1968, 5, 20))
		require.NoError(t, parent.LinkAsParentOf(NewPerson("A", date(1992, 11, 12))))
		require.ErrorIs(t, parent.LinkAsParentOf(NewPerson("B", date(1995, 2, 28))), ErrAlreadyLinked)
	})

	t.Run("cycle_rejected", func(t *testing.T) {
		grandparent := NewPerson("G", date(1940, 1, 1))
		parent := NewPerson("P", date(1965, 1, 1))
		require.NoError(t, parent.LinkAsChildOf(grandparent))

		// P claiming its own ancestor G as a child
		require.ErrorIs(t, parent.LinkAsParentOf(grandparent), ErrLinkCycle)
	})
}

func TestPerson_SetSpouse(t *testing.T) {
	t.Run("symmetric", func(t *testing.T) {
		a := NewPerson("A", date(1968, 5, 20))
		b := NewPerson("B", date(1965, 8, 15))
		require.NoError(t, a.SetSpouse(b))
		assert.Same(t, b, a.Spouse())
		assert.Same(t, a, b.Spouse())
	})

	t.Run("same_pair_idempotent", func(t *testing.T) {
		a := NewPerson("A", date(1968, 5, 20))
		b := NewPerson("B", date(1965, 8, 15))
		require.NoError(t, a.SetSpouse(b))
		require.NoError(t, b.SetSpouse(a))
	})

	t.Run("other_spouse_rejected", func(t *testing.T) {
		a := NewPerson("A", date(1968, 5, 20))
		b := NewPerson("B", date(1965, 8, 15))
		c := NewPerson("C", date(1970, 1, 1))
		require.NoError(t, a.SetSpouse(b))

		require.ErrorIs(t, a.SetSpouse(c), ErrSpouseTaken)
		require.ErrorIs(t, c.SetSpouse(b), ErrSpouseTaken)
		// rejected call left no half-link behind
		assert.Nil(t, c.Spouse())
	})

	t.Run("self_and_nil_rejected", func(t *testing.T) {
		a := NewPerson("A", date(1968, 5, 20))
		require.ErrorIs(t, a.SetSpouse(a), ErrSelfLink)
		require.ErrorIs(t, a.SetSpouse(nil), ErrNilPerson)
	})
}

package usecase

import "famtree/internal/domain"

// Relationship queries are pure: they read the Person graph and return the
// same underlying instances, never copies. Where the result is a set, order
// is first-seen so output stays deterministic for a given registry.

// Parents returns p's parents in stored order.
func Parents(p *domain.Person) []*domain.Person {
	return p.Parents()
}

// Grandparents concatenates each parent's parents in parent order.
// Duplicates are kept: a grandparent reachable through both parents shows up
// twice.
func Grandparents(p *domain.Person) []*domain.Person {
	var out []*domain.Person
	for _, parent := range p.Parents() {
		out = append(out, parent.Parents()...)
	}
	return out
}

// Siblings returns everyone sharing at least one parent with p, excluding p
// itself. Half-siblings count; the result is deduplicated.
func Siblings(p *domain.Person) []*domain.Person {
	var out []*domain.Person
	seen := map[*domain.Person]struct{}{p: {}}
	for _, parent := range p.Parents() {
		for _, child := range parent.Children() {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			out = append(out, child)
		}
	}
	return out
}

// Cousins collects the children of every sibling of every parent of p.
// When both parents share overlapping sibling sets the same cousin appears
// once per path; duplicates are intentionally not removed.
func Cousins(p *domain.Person) []*domain.Person {
	var out []*domain.Person
	for _, parent := range p.Parents() {
		for _, auntOrUncle := range Siblings(parent) {
			out = append(out, auntOrUncle.Children()...)
		}
	}
	return out
}

// ImmediateFamily is the dedup union of parents, siblings, spouse and
// children.
func ImmediateFamily(p *domain.Person) []*domain.Person {
	var out []*domain.Person
	seen := map[*domain.Person]struct{}{p: {}}
	add := func(ps ...*domain.Person) {
		for _, q := range ps {
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			out = append(out, q)
		}
	}
	add(p.Parents()...)
	add(Siblings(p)...)
	if s := p.Spouse(); s != nil {
		add(s)
	}
	add(p.Children()...)
	return out
}

// ExtendedFamily adds aunts/uncles and cousins to the immediate family, then
// keeps only living members. Immediate family alone does not filter the
// deceased; extended family does.
func ExtendedFamily(p *domain.Person) []*domain.Person {
	var out []*domain.Person
	seen := map[*domain.Person]struct{}{p: {}}
	add := func(ps ...*domain.Person) {
		for _, q := range ps {
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			if q.Deceased() {
				continue
			}
			out = append(out, q)
		}
	}
	add(ImmediateFamily(p)...)
	for _, parent := range p.Parents() {
		for _, auntOrUncle := range Siblings(parent) {
			add(auntOrUncle)
			add(auntOrUncle.Children()...)
		}
	}
	return out
}

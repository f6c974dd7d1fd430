package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"famtree/internal/domain"
)

// Handler renders query results for the console. All output goes through Out
// so tests can capture it; logging goes to slog and stays off the screen at
// the default level.
type Handler struct {
	UC    domain.FamilyUsecase
	Out   io.Writer
	plain bool
}

func NewHandler(uc domain.FamilyUsecase, out io.Writer, plain bool) *Handler {
	return &Handler{UC: uc, Out: out, plain: plain}
}

func (h *Handler) Details(ctx context.Context, name string) error {
	desc, err := h.UC.Describe(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(h.Out, h.errText(MsgNotFound))
			return nil
		}
		slog.Error("describe failed", "name", name, "err", err)
		return err
	}
	slog.Debug("describe ok", "name", name)
	fmt.Fprintln(h.Out, desc)
	return nil
}

func (h *Handler) Parents(ctx context.Context, name string) error {
	return h.relatives(ctx, name, "Parents", h.UC.Parents)
}

func (h *Handler) Grandparents(ctx context.Context, name string) error {
	return h.relatives(ctx, name, "Grandparents", h.UC.Grandparents)
}

func (h *Handler) Siblings(ctx context.Context, name string) error {
	return h.relatives(ctx, name, "Siblings", h.UC.Siblings)
}

func (h *Handler) Cousins(ctx context.Context, name string) error {
	return h.relatives(ctx, name, "Cousins", h.UC.Cousins)
}

func (h *Handler) ImmediateFamily(ctx context.Context, name string) error {
	return h.relatives(ctx, name, "Immediate Family", h.UC.ImmediateFamily)
}

func (h *Handler) ExtendedFamily(ctx context.Context, name string) error {
	return h.relatives(ctx, name, "Extended Family", h.UC.ExtendedFamily)
}

func (h *Handler) relatives(ctx context.Context, name, label string, query func(*domain.Person) []*domain.Person) error {
	p, err := h.UC.Get(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(h.Out, h.errText(MsgNotFound))
			return nil
		}
		slog.Error("lookup failed", "name", name, "err", err)
		return err
	}
	rel := query(p)
	slog.Debug("relationship query ok", "kind", label, "name", name, "count", len(rel))
	fmt.Fprintf(h.Out, "%s of %s: %s\n", label, p.Name(), renderPeople(rel))
	return nil
}

func (h *Handler) Calendar(ctx context.Context) error {
	entries, err := h.UC.BirthdayCalendar(ctx)
	if err != nil {
		slog.Error("birthday calendar failed", "err", err)
		return err
	}
	fmt.Fprintln(h.Out, h.title("Family Birthday Calendar:"))
	for _, e := range entries {
		fmt.Fprintf(h.Out, "%02d/%02d: %s\n", e.Day, e.Month, joinNames(e.Names))
	}
	return nil
}

func (h *Handler) AverageAgeAtDeath(ctx context.Context) error {
	avg, err := h.UC.AverageAgeAtDeath(ctx)
	if err != nil {
		slog.Error("average age at death failed", "err", err)
		return err
	}
	fmt.Fprintf(h.Out, "The average age at death is: %.2f years\n", avg)
	return nil
}

func (h *Handler) ChildrenStatistics(ctx context.Context) error {
	counts, avg, err := h.UC.ChildrenStatistics(ctx)
	if err != nil {
		slog.Error("children statistics failed", "err", err)
		return err
	}
	members, err := h.UC.Members(ctx)
	if err != nil {
		slog.Error("member list failed", "err", err)
		return err
	}
	fmt.Fprintln(h.Out, h.title("Number of children per individual:"))
	for _, p := range members {
		fmt.Fprintf(h.Out, "%s: %d\n", p.Name(), counts[p.Name()])
	}
	fmt.Fprintf(h.Out, "The average number of children per person is: %.2f\n", avg)
	return nil
}

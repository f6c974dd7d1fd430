package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

const (
	actDetails      = "details"
	actParents      = "parents"
	actGrandparents = "grandparents"
	actImmediate    = "immediate"
	actExtended     = "extended"
	actSiblings     = "siblings"
	actCousins      = "cousins"
	actCalendar     = "calendar"
	actAverageAge   = "averageAge"
	actChildren     = "children"
	actExit         = "exit"
)

// RunMenu drives the interactive loop: pick an action, pick a member where
// the action needs one, print, repeat until Exit or Ctrl+C.
func (h *Handler) RunMenu(ctx context.Context) error {
	for {
		choice, err := h.pickAction()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if choice == actExit {
			fmt.Fprintln(h.Out, MsgGoodbye)
			return nil
		}
		if err := h.dispatch(ctx, choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
	}
}

func (h *Handler) pickAction() (string, error) {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Family Tree Menu").
			Options(
				huh.NewOption("View Member Details", actDetails),
				huh.NewOption("View Parents", actParents),
				huh.NewOption("View Grandparents", actGrandparents),
				huh.NewOption("View Immediate Family", actImmediate),
				huh.NewOption("View Extended Family", actExtended),
				huh.NewOption("View Siblings", actSiblings),
				huh.NewOption("View Cousins", actCousins),
				huh.NewOption("View Birthday Calendar", actCalendar),
				huh.NewOption("View Average Age at Death", actAverageAge),
				huh.NewOption("View Children Statistics", actChildren),
				huh.NewOption("Exit", actExit),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func (h *Handler) pickMember(ctx context.Context) (string, error) {
	members, err := h.UC.Members(ctx)
	if err != nil {
		return "", err
	}
	if len(members) == 0 {
		return "", errors.New(MsgNoMembers)
	}
	names := make([]string, 0, len(members))
	for _, p := range members {
		names = append(names, p.Name())
	}

	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which member?").
			Options(huh.NewOptions(names...)...).
			Value(&name),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return name, nil
}

func (h *Handler) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case actCalendar:
		return h.Calendar(ctx)
	case actAverageAge:
		return h.AverageAgeAtDeath(ctx)
	case actChildren:
		return h.ChildrenStatistics(ctx)
	}

	name, err := h.pickMember(ctx)
	if err != nil {
		return err
	}
	switch choice {
	case actDetails:
		return h.Details(ctx, name)
	case actParents:
		return h.Parents(ctx, name)
	case actGrandparents:
		return h.Grandparents(ctx, name)
	case actImmediate:
		return h.ImmediateFamily(ctx, name)
	case actExtended:
		return h.ExtendedFamily(ctx, name)
	case actSiblings:
		return h.Siblings(ctx, name)
	case actCousins:
		return h.Cousins(ctx, name)
	default:
		return fmt.Errorf("unknown menu choice %q", choice)
	}
}

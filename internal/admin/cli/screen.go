package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/qradmin/internal/admin/listing"
	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/dmitrijs2005/qradmin/internal/admin/views"
)

// screen is what the REPL needs from a resource screen.
type screen interface {
	show(ctx context.Context) error
	search(ctx context.Context, text string) error
	filter(ctx context.Context, key, value string) error
	page(ctx context.Context, n int) error
	next(ctx context.Context) error
	prev(ctx context.Context) error
	edit(ctx context.Context, row string) error
	remove(ctx context.Context, row string) error
	view(ctx context.Context, row string) error
	filters() []string
}

// listScreen binds one list controller to its rendering, edit form and
// detail view.
type listScreen[T models.Entity, P models.Patch] struct {
	app      *App
	resource string
	ctrl     *listing.Controller[T, P]
	render   func(listing.Snapshot[T]) string
	// form prompts for a patch, starting from the entity's current values.
	form func(entity T) (P, error)
	// detail renders one entity; nil when the resource has no detail view.
	detail func(ctx context.Context, entity T) (string, error)
}

func (s *listScreen[T, P]) print() {
	s.app.println(s.render(s.ctrl.State()))
}

// after prints the list following a controller call and reports its error.
func (s *listScreen[T, P]) after(ctx context.Context, err error) error {
	err = s.app.report(ctx, err)
	if s.app.currentRoute() != RouteLogin {
		s.print()
	}
	return err
}

func (s *listScreen[T, P]) show(ctx context.Context) error {
	return s.after(ctx, s.ctrl.Refetch(ctx))
}

func (s *listScreen[T, P]) search(ctx context.Context, text string) error {
	return s.after(ctx, s.ctrl.SetSearch(ctx, text))
}

func (s *listScreen[T, P]) filter(ctx context.Context, key, value string) error {
	return s.after(ctx, s.ctrl.SetFilter(ctx, key, value))
}

func (s *listScreen[T, P]) page(ctx context.Context, n int) error {
	return s.after(ctx, s.ctrl.SetPage(ctx, n))
}

func (s *listScreen[T, P]) next(ctx context.Context) error {
	return s.after(ctx, s.ctrl.NextPage(ctx))
}

func (s *listScreen[T, P]) prev(ctx context.Context) error {
	return s.after(ctx, s.ctrl.PrevPage(ctx))
}

func (s *listScreen[T, P]) filters() []string {
	return s.ctrl.Filters()
}

func (s *listScreen[T, P]) pick(row string) (T, error) {
	items := s.ctrl.State().Items
	i, err := rowIndex(row, len(items))
	if err != nil {
		var zero T
		return zero, err
	}
	return items[i], nil
}

// edit runs the edit modal: prompt, submit, and on failure offer to retry
// with the entity still selected.
func (s *listScreen[T, P]) edit(ctx context.Context, row string) error {
	entity, err := s.pick(row)
	if err != nil {
		return s.app.report(ctx, err)
	}
	if err := s.ctrl.BeginEdit(entity); err != nil {
		return s.app.report(ctx, err)
	}
	s.app.println(fmt.Sprintf("Editing %s (Enter keeps a value, '-' clears it)", entity.DisplayName()))

	for {
		patch, err := s.form(entity)
		if err == nil {
			err = s.ctrl.SubmitEdit(ctx, patch)
			// closed means saved, even if the refresh afterwards failed
			if s.ctrl.State().Edit.Phase == listing.ModalClosed {
				s.app.println("Saved.")
				return s.after(ctx, err)
			}
		}
		err = s.app.report(ctx, err)
		if s.app.currentRoute() == RouteLogin || !s.app.confirm("Try again?") {
			_ = s.ctrl.CancelEdit()
			return err
		}
	}
}

// remove asks for confirmation before deleting.
func (s *listScreen[T, P]) remove(ctx context.Context, row string) error {
	entity, err := s.pick(row)
	if err != nil {
		return s.app.report(ctx, err)
	}
	s.ctrl.RequestDelete(entity)
	s.app.println(views.DeleteWarning(s.resource, entity.DisplayName()))

	if !s.app.confirm("Delete?") {
		s.ctrl.CancelDelete()
		s.app.println("Cancelled.")
		return nil
	}
	if err := s.ctrl.ConfirmDelete(ctx); err != nil {
		return s.after(ctx, err)
	}
	s.app.println("Deleted.")
	s.print()
	return nil
}

func (s *listScreen[T, P]) view(ctx context.Context, row string) error {
	if s.detail == nil {
		s.app.println(fmt.Sprintf("No detail view for %s.", s.resource))
		return nil
	}
	entity, err := s.pick(row)
	if err != nil {
		return s.app.report(ctx, err)
	}
	out, err := s.detail(ctx, entity)
	if err != nil {
		return s.app.report(ctx, err)
	}
	s.app.println(out)
	return nil
}

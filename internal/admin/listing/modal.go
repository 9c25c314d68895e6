package listing

import (
	"context"
)

type ModalPhase int

const (
	ModalClosed ModalPhase = iota
	ModalEditing
	ModalSaving
	ModalFailed
)

func (p ModalPhase) String() string {
	switch p {
	case ModalClosed:
		return "closed"
	case ModalEditing:
		return "editing"
	case ModalSaving:
		return "saving"
	case ModalFailed:
		return "failed"
	}
	return "unknown"
}

// EditModal is the edit dialog. Entity is set in every phase but closed;
// Err is set only when failed.
type EditModal[T any] struct {
	Phase  ModalPhase
	Entity *T
	Err    error
}

func (m EditModal[T]) clone() EditModal[T] {
	if m.Entity != nil {
		e := *m.Entity
		m.Entity = &e
	}
	return m
}

// BeginEdit opens the modal on entity, replacing any previous selection.
func (c *Controller[T, P]) BeginEdit(entity T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.edit.Phase == ModalSaving {
		return ErrModalBusy
	}
	c.edit = EditModal[T]{Phase: ModalEditing, Entity: &entity}
	return nil
}

// CancelEdit closes the modal. A save in flight cannot be cancelled.
func (c *Controller[T, P]) CancelEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.edit.Phase == ModalSaving {
		return ErrModalBusy
	}
	c.edit = EditModal[T]{}
	return nil
}

// SubmitEdit saves patch for the selected entity. On success the modal closes
// and the list is refetched; on failure the modal stays open in the failed
// phase with the entity still selected, and may be submitted again.
// Invalid patches fail without a request.
func (c *Controller[T, P]) SubmitEdit(ctx context.Context, patch P) error {
	c.mu.Lock()
	switch c.edit.Phase {
	case ModalClosed:
		c.mu.Unlock()
		return ErrNoSelection
	case ModalSaving:
		c.mu.Unlock()
		return ErrModalBusy
	}
	entity := *c.edit.Entity
	if err := patch.Validate(); err != nil {
		c.edit.Phase = ModalFailed
		c.edit.Err = err
		c.mu.Unlock()
		return err
	}
	c.edit.Phase = ModalSaving
	c.edit.Err = nil
	c.mu.Unlock()

	_, err := c.src.Update(ctx, entity.EntityID(), patch)

	c.mu.Lock()
	if err != nil {
		c.edit.Phase = ModalFailed
		c.edit.Err = err
		c.mu.Unlock()
		c.logger.Warn(ctx, "update failed", "id", entity.EntityID(), "error", err)
		return err
	}
	c.edit = EditModal[T]{}
	c.mu.Unlock()

	c.logger.Info(ctx, "updated", "id", entity.EntityID())
	return c.refreshAfterMutation(ctx)
}

func (c *Controller[T, P]) RequestDelete(entity T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = &entity
}

func (c *Controller[T, P]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// ConfirmDelete deletes the pending entity. The confirmation is cleared
// whatever the outcome; the list is refetched only on success.
func (c *Controller[T, P]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.pending == nil {
		c.mu.Unlock()
		return ErrNoSelection
	}
	entity := *c.pending
	c.mu.Unlock()

	err := c.src.Delete(ctx, entity.EntityID())

	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn(ctx, "delete failed", "id", entity.EntityID(), "error", err)
		return err
	}
	c.logger.Info(ctx, "deleted", "id", entity.EntityID())
	return c.refreshAfterMutation(ctx)
}

// Package reorder turns pointer drag gestures into index moves on an
// ordered collection. The gesture state machine only knows the narrow Mover
// surface, so mouse, touch or keyboard reordering all drive the same data
// model without touching reconciliation.
package reorder

import "errors"

var ErrNotDragging = errors.New("no drag in progress")

// Mover is the data model side of a drag.
type Mover interface {
	MoveTo(from, to int) error
	Len() int
}

// Controller is the Idle → Dragging(source) → Idle state machine. The move
// is applied incrementally on every drag-over, so drag-end never needs a
// rollback: its only failure mode is dropping on the original position,
// which is a no-op.
type Controller struct {
	mover  Mover
	source int
}

func New(m Mover) *Controller {
	return &Controller{mover: m, source: -1}
}

// Dragging returns the tracked position of the dragged item.
func (c *Controller) Dragging() (int, bool) {
	if c.source < 0 {
		return 0, false
	}
	return c.source, true
}

func (c *Controller) DragStart(position int) error {
	if position < 0 || position >= c.mover.Len() {
		return errors.New("drag start out of range")
	}
	c.source = position
	return nil
}

// DragOver moves the dragged item to position and re-anchors the drag there,
// so the item tracks the pointer. Hovering the item's own position does
// nothing. Calls outside a drag are ignored.
func (c *Controller) DragOver(position int) error {
	if c.source < 0 {
		return ErrNotDragging
	}
	if position == c.source {
		return nil
	}
	if err := c.mover.MoveTo(c.source, position); err != nil {
		return err
	}
	c.source = position
	return nil
}

// DragEnd returns to idle unconditionally, for both drop and cancel.
func (c *Controller) DragEnd() {
	c.source = -1
}

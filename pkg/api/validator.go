package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (c ClientCommand) Validate() error {
	if c.Action == "" {
		return errors.New("action is required")
	}
	if len(c.Action) > 32 {
		return errors.New("action name too long")
	}
	return nil
}

func (f Frame) Validate() error {
	if f.Type != FrameType {
		return errors.New("unexpected frame type")
	}
	if f.Grid.Width <= 0 || f.Grid.Height <= 0 {
		return errors.New("grid size must be positive")
	}
	for _, c := range f.Cells {
		if c.X < 0 || c.Y < 0 || c.X >= f.Grid.Width || c.Y >= f.Grid.Height {
			return errors.New("cell outside of the grid")
		}
	}
	return nil
}

func (p DirectionPayload) Validate() error {
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("direction must be a unit step")
	}
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("direction is empty")
	}
	return nil
}

func (p SlotPayload) Validate() error {
	if p.Slot < 0 || p.Slot >= MaxInventorySlots {
		return errors.New("slot out of range")
	}
	return nil
}

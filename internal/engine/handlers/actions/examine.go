package actions

import (
	"fmt"

	"dungeon-core/internal/domain"
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/internal/systems"
)

// HandleExamine описывает клетку под ногами и ближайшую видимую сущность. Ход не тратится.
func HandleExamine(ctx handlers.Context) (handlers.Result, error) {
	res := describeFloor(ctx)
	if res.Msg == "" {
		res.Msg = "You see nothing special here."
	}

	if other, ok := systems.ClosestSeenEntity(ctx.Actor); ok {
		name, text := other.Describe()
		if text == "" {
			text = "It says nothing about itself."
		}
		res.Msg += fmt.Sprintf(" You see a %s: %s", name, text)
	}
	res.MsgType = handlers.MsgInfo
	return res, nil
}

// describeFloor перечисляет то, что лежит на клетке актера.
func describeFloor(ctx handlers.Context) handlers.Result {
	l := ctx.Actor.Level()
	if l == nil {
		return handlers.EmptyResult()
	}
	tile, ok := l.Tile(ctx.Actor.Pos())
	if !ok {
		return handlers.EmptyResult()
	}

	var msg string
	for _, cat := range []domain.Category{domain.CategoryDungeonFeature, domain.CategoryItem, domain.CategoryCloud} {
		for _, o := range tile.Pieces(cat) {
			d, ok := o.(domain.Describer)
			if !ok {
				continue
			}
			name, _ := d.Describe()
			if msg != "" {
				msg += " "
			}
			switch cat {
			case domain.CategoryItem:
				msg += fmt.Sprintf("You see a %s here.", name)
			case domain.CategoryCloud:
				msg += fmt.Sprintf("You are inside a %s.", name)
			default:
				msg += fmt.Sprintf("There is a %s here.", name)
			}
		}
	}
	return handlers.Result{Msg: msg, MsgType: handlers.MsgInfo}
}

// itemUnder - предмет на клетке актера.
func itemUnder(ctx handlers.Context) (*domain.Entity, bool) {
	l := ctx.Actor.Level()
	if l == nil {
		return nil, false
	}
	tile, ok := l.Tile(ctx.Actor.Pos())
	if !ok {
		return nil, false
	}
	o, ok := tile.Item()
	if !ok {
		return nil, false
	}
	item, ok := o.(*domain.Entity)
	return item, ok
}

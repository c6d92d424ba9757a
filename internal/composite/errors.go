package composite

import (
	"errors"
	"fmt"
)

var (
	// ErrStructural - ошибка сборки дерева (ошибка программиста или контента). Не повторяется.
	ErrStructural = errors.New("composite: structural error")
	// ErrLookup - запрошенного узла нет. Вызывающий должен был проверить HasChild/HasSibling.
	ErrLookup = errors.New("composite: lookup error")
)

// StructuralError описывает недопустимое изменение структуры дерева.
type StructuralError struct {
	Op     string
	Type   TypeTag
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("composite: %s %s: %s", e.Op, e.Type, e.Reason)
}

func (e *StructuralError) Unwrap() error { return ErrStructural }

// LookupError описывает обращение к отсутствующему узлу или родителю.
type LookupError struct {
	Type   TypeTag
	Reason string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("composite: lookup %s: %s", e.Type, e.Reason)
}

func (e *LookupError) Unwrap() error { return ErrLookup }

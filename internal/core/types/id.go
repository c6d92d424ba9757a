package types

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// EntityID - 64-битный идентификатор игрового объекта.
//
// Формат битов (от старших к младшим):
//
//	[ Kind (8) | Depth (16) | Index (40) ]
//
// Где:
//   - Kind - категория занятости клетки, в которой объект был создан
//   - Depth - глубина уровня, на котором объект был создан
//   - Index - порядковый номер, выданный IDAllocator
//
// ID неизменен: объект, спустившийся на другой уровень, сохраняет свой Depth.
type EntityID uint64

// NilEntityID - нулевой идентификатор (объект без регистрации).
const NilEntityID EntityID = 0

const (
	bitsIndex = 40
	bitsDepth = 16
	bitsKind  = 8

	shiftDepth = bitsIndex
	shiftKind  = bitsIndex + bitsDepth

	maskIndex = (1 << bitsIndex) - 1
	maskDepth = (1 << bitsDepth) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID из составных частей. Диапазоны не проверяются.
func PackEntityID(kind uint8, depth uint16, index uint64) EntityID {
	return EntityID(
		(uint64(kind)&maskKind)<<shiftKind |
			(uint64(depth)&maskDepth)<<shiftDepth |
			index&maskIndex,
	)
}

func (id EntityID) Kind() uint8 {
	return uint8((uint64(id) >> shiftKind) & maskKind)
}

func (id EntityID) Depth() uint16 {
	return uint16((uint64(id) >> shiftDepth) & maskDepth)
}

func (id EntityID) Index() uint64 {
	return uint64(id) & maskIndex
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String для логов: [kind:depth:idx]
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%d:%d:%d]", id.Kind(), id.Depth(), id.Index())
}

// MarshalJSON сериализует ID в строку, так как JS теряет точность для больших uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает как строку, так и число.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*id = NilEntityID
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*id = EntityID(v)
	return nil
}

// IDAllocator выдает уникальные индексы. Индекс 0 не выдается никогда,
// поэтому выданный ID не может совпасть с NilEntityID.
type IDAllocator struct {
	next atomic.Uint64
}

// Next выдает следующий ID для объекта заданного вида на заданной глубине.
func (a *IDAllocator) Next(kind uint8, depth uint16) EntityID {
	return PackEntityID(kind, depth, a.next.Add(1))
}

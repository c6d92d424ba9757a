package handlers

import (
	"fmt"

	"dungeon-core/internal/input"
	"dungeon-core/pkg/api"
)

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (REST, PICKUP)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// Decoder извлекает данные из команды. false - команда их не несет.
type Decoder[T any] func(cmd input.Command) (T, bool)

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя разбор команды и Validate.
func WithPayload[T any](decode Decoder[T], handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, cmd input.Command) (Result, error) {
		// 1. Распаковка
		payload, ok := decode(cmd)
		if !ok {
			return Result{}, fmt.Errorf("command %s carries no payload", cmd)
		}

		// 2. Автоматическая валидация
		// Проверяем, реализует ли структура T интерфейс Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ input.Command) (Result, error) {
		return handler(ctx)
	}
}

// DirectionOf - Decoder для команд движения.
func DirectionOf(cmd input.Command) (api.DirectionPayload, bool) {
	dx, dy, ok := cmd.Direction()
	return api.DirectionPayload{Dx: dx, Dy: dy}, ok
}

// SlotOf - Decoder для цифровых команд (выбор ячейки инвентаря).
func SlotOf(cmd input.Command) (api.SlotPayload, bool) {
	n, ok := cmd.Digit()
	return api.SlotPayload{Slot: n}, ok
}

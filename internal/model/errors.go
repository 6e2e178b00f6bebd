package model

import "errors"

// Ошибки игровых движков. Все они локальны и восстановимы:
// игрок может повторить действие после исправления причины
var (
	// ErrInsufficientChips - ставка превышает баланс. Состояние не меняется
	ErrInsufficientChips = errors.New("not enough chips")

	// ErrNoBetSelected - спин рулетки без выбранного типа ставки
	ErrNoBetSelected = errors.New("no bet selected")

	// ErrInvalidSelection - некорректный выбор ставки (номер вне 0-36, неизвестный цвет и т.п.)
	ErrInvalidSelection = errors.New("invalid bet selection")

	// ErrInvalidTransition - действие вызвано вне допустимой фазы
	// (например hit во время приема ставок). Состояние не меняется
	ErrInvalidTransition = errors.New("invalid game transition")

	// ErrInvalidBet - ставка не положительная
	ErrInvalidBet = errors.New("bet must be positive")
)

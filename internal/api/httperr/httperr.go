package httperr

import (
	"errors"
	"net/http"

	"virtual_casino/internal/model"
)

// Status переводит ошибку сервиса в HTTP статус.
// Игровые ошибки клиентские и восстановимые, все остальное - 500
func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrInsufficientChips):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrInvalidBet),
		errors.Is(err, model.ErrNoBetSelected),
		errors.Is(err, model.ErrInvalidSelection):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write отправляет текст ошибки с подходящим статусом
func Write(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), Status(err))
}

package roulette

import (
	"net/http"

	dto "virtual_casino/internal/api/dto/roulette"
	"virtual_casino/internal/api/httperr"
	"virtual_casino/internal/converter"
	"virtual_casino/internal/middleware"
	"virtual_casino/internal/service"
	"virtual_casino/pkg/req"
	"virtual_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.RouletteService
}

type Handler struct {
	serv service.RouletteService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin принимает ставку с выбором и разыгрывает один спин
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), userID, converter.ToRouletteSpin(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRouletteSpinResponse(*result))
}

package slots

import (
	"net/http"

	dto "virtual_casino/internal/api/dto/slots"
	"virtual_casino/internal/api/httperr"
	"virtual_casino/internal/converter"
	"virtual_casino/internal/middleware"
	"virtual_casino/internal/service"
	"virtual_casino/pkg/req"
	"virtual_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotsService
}

type Handler struct {
	serv service.SlotsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin разыгрывает один спин слота
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

	result, err := h.serv.Spin(r.Context(), userID, converter.ToSlotSpin(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotSpinResponse(*result))
}

// Info - карточка игры: название, RTP, волатильность, таблица выплат
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotInfoResponse(h.serv.Info()))
}

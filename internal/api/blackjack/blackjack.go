package blackjack

import (
	"context"
	"net/http"

	dto "virtual_casino/internal/api/dto/blackjack"
	"virtual_casino/internal/api/httperr"
	"virtual_casino/internal/converter"
	"virtual_casino/internal/middleware"
	"virtual_casino/internal/model"
	"virtual_casino/internal/service"
	"virtual_casino/pkg/req"
	"virtual_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.BlackjackService
}

type Handler struct {
	serv service.BlackjackService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Bet фиксирует ставку перед раздачей
func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.PlaceBetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respond(w, func(ctx context.Context) (*model.BlackjackRound, error) {
		return h.serv.PlaceBet(ctx, userID, payload.Amount)
	}, r)
}

// Deal начинает раунд
func (h *Handler) Deal(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.serv.Deal)
}

// Hit - добор карты игроком
func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.serv.Hit)
}

// Stand - передача хода дилеру, раунд доигрывается сразу
func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.serv.Stand)
}

// NewHand возвращает стол к приему ставок
func (h *Handler) NewHand(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.serv.NewHand)
}

// State - текущий снимок стола
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.serv.State)
}

// action - общий каркас для действий без тела запроса
func (h *Handler) action(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, userID int) (*model.BlackjackRound, error),
) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	h.respond(w, func(ctx context.Context) (*model.BlackjackRound, error) {
		return op(ctx, userID)
	}, r)
}

func (h *Handler) respond(
	w http.ResponseWriter,
	op func(ctx context.Context) (*model.BlackjackRound, error),
	r *http.Request,
) {
	round, err := op(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackRoundResponse(*round))
}

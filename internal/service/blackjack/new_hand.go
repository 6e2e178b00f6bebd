package blackjack

import (
	"context"

	"virtual_casino/internal/model"
)

// NewHand очищает руки и ставку и возвращает стол в фазу приема ставок.
// Колода при этом не пересобирается - остаток переносится в следующий раунд.
// Повторный вызов из фазы приема ставок - no-op, чтобы двойной клик
// по кнопке не превращался в ошибку
func (s *serv) NewHand(ctx context.Context, userID int) (*model.BlackjackRound, error) {
	var round *model.BlackjackRound
	err := s.stateRepo.Do(userID, func(st *model.BlackjackState) error {
		switch st.Phase {
		case model.PhaseEnded:
			st.PlayerHand = nil
			st.DealerHand = nil
			st.Bet = 0
			st.Outcome = model.OutcomeNone
			st.Payout = 0
			st.Phase = model.PhaseBetting
		case model.PhaseBetting:
			// Уже в начальной фазе, ничего не меняем
		default:
			return model.ErrInvalidTransition
		}

		var err error
		round, err = s.snapshot(ctx, userID, st)
		return err
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

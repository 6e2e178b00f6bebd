package blackjack

import (
	"context"

	"virtual_casino/internal/model"
)

// PlaceBet фиксирует ставку. Допустим только в фазе приема ставок.
// Фишки в этот момент не списываются - списание происходит на раздаче
func (s *serv) PlaceBet(ctx context.Context, userID int, amount int) (*model.BlackjackRound, error) {
	var round *model.BlackjackRound
	err := s.stateRepo.Do(userID, func(st *model.BlackjackState) error {
		if st.Phase != model.PhaseBetting {
			return model.ErrInvalidTransition
		}
		if amount <= 0 {
			return model.ErrInvalidBet
		}

		// Ставка не может превышать баланс на момент выбора
		balance, err := s.wallet.Balance(ctx, userID)
		if err != nil {
			return err
		}
		if amount > balance {
			return model.ErrInsufficientChips
		}

		st.Bet = amount

		round, err = s.snapshot(ctx, userID, st)
		return err
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

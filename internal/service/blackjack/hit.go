package blackjack

import (
	"context"

	"virtual_casino/internal/model"
)

// Hit добирает одну карту игроку. Перебор сразу завершает раунд
// проигрышем, ставка остается у казино
func (s *serv) Hit(ctx context.Context, userID int) (*model.BlackjackRound, error) {
	var round *model.BlackjackRound
	err := s.stateRepo.Do(userID, func(st *model.BlackjackState) error {
		if st.Phase != model.PhasePlaying {
			return model.ErrInvalidTransition
		}

		// Порог дозаполнения перед добором: меньше 5 карт - новая колода
		if st.Deck.Len() < deckLowWaterDraw {
			st.Deck = s.freshDeck()
		}

		card, err := st.Deck.Draw()
		if err != nil {
			return err
		}
		st.PlayerHand = append(st.PlayerHand, card)

		if st.PlayerHand.Value() > 21 {
			st.Outcome = model.OutcomeLose
			st.Payout = 0
			st.Phase = model.PhaseEnded
		}

		round, err = s.snapshot(ctx, userID, st)
		return err
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

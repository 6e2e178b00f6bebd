package blackjack

import (
	"context"

	"virtual_casino/internal/model"
	"virtual_casino/pkg/deck"
)

// Deal начинает раунд: списывает ставку и раздает по две карты
// игроку и дилеру в порядке игрок/дилер/игрок/дилер
func (s *serv) Deal(ctx context.Context, userID int) (*model.BlackjackRound, error) {
	var round *model.BlackjackRound
	err := s.stateRepo.Do(userID, func(st *model.BlackjackState) error {
		if st.Phase != model.PhaseBetting {
			return model.ErrInvalidTransition
		}
		if st.Bet <= 0 {
			return model.ErrInvalidBet
		}

		// Ставка списывается в момент начала игры.
		// Списание идет первым: отклоненная раздача не должна
		// трогать стол, включая переносимую колоду
		if _, err := s.wallet.Debit(ctx, userID, st.Bet); err != nil {
			return err
		}

		// Порог дозаполнения перед раздачей: меньше 10 карт - новая колода
		if st.Deck.Len() < deckLowWaterDeal {
			st.Deck = s.freshDeck()
		}

		st.PlayerHand = nil
		st.DealerHand = nil
		st.Outcome = model.OutcomeNone
		st.Payout = 0

		for i := 0; i < 2; i++ {
			card, err := st.Deck.Draw()
			if err != nil {
				return err
			}
			st.PlayerHand = append(st.PlayerHand, card)

			card, err = st.Deck.Draw()
			if err != nil {
				return err
			}
			st.DealerHand = append(st.DealerHand, card)
		}

		st.Phase = model.PhasePlaying

		var err error
		round, err = s.snapshot(ctx, userID, st)
		return err
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

// freshDeck собирает и перемешивает новую колоду
func (s *serv) freshDeck() *deck.Deck {
	d := deck.New()
	d.Shuffle(s.rng)
	return d
}

package blackjack

import (
	"context"

	"virtual_casino/internal/model"
)

// Stand передает ход дилеру и синхронно доигрывает раунд до конца
func (s *serv) Stand(ctx context.Context, userID int) (*model.BlackjackRound, error) {
	var round *model.BlackjackRound
	err := s.stateRepo.Do(userID, func(st *model.BlackjackState) error {
		if st.Phase != model.PhasePlaying {
			return model.ErrInvalidTransition
		}

		st.Phase = model.PhaseDealerTurn

		if err := s.runDealer(st); err != nil {
			return err
		}

		if err := s.settle(ctx, userID, st); err != nil {
			return err
		}

		st.Phase = model.PhaseEnded

		var err error
		round, err = s.snapshot(ctx, userID, st)
		return err
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

// runDealer - фиксированная нестратегическая логика дилера:
// добор пока рука <= 16, остановка на любых 17 и выше (мягкие включительно)
func (s *serv) runDealer(st *model.BlackjackState) error {
	for st.DealerHand.Value() <= dealerDrawLimit {
		if st.Deck.Len() < deckLowWaterDraw {
			st.Deck = s.freshDeck()
		}

		card, err := st.Deck.Draw()
		if err != nil {
			return err
		}
		st.DealerHand = append(st.DealerHand, card)
	}
	return nil
}

// settle определяет исход по финальным рукам и начисляет выплату.
// Выплаты брутто: победа возвращает 2x ставки, пуш возвращает ставку,
// проигрыш не возвращает ничего (ставка уже списана на раздаче)
func (s *serv) settle(ctx context.Context, userID int, st *model.BlackjackState) error {
	playerValue := st.PlayerHand.Value()
	dealerValue := st.DealerHand.Value()

	switch {
	case dealerValue > 21:
		st.Outcome = model.OutcomeWin
		st.Payout = st.Bet * winMultiplier
	case dealerValue > playerValue:
		st.Outcome = model.OutcomeLose
		st.Payout = 0
	case dealerValue < playerValue:
		st.Outcome = model.OutcomeWin
		st.Payout = st.Bet * winMultiplier
	default:
		st.Outcome = model.OutcomePush
		st.Payout = st.Bet
	}

	if st.Payout > 0 {
		if _, err := s.wallet.Credit(ctx, userID, st.Payout); err != nil {
			return err
		}
	}
	return nil
}

package converter

import (
	dto "virtual_casino/internal/api/dto/blackjack"
	"virtual_casino/internal/model"
	"virtual_casino/pkg/deck"
)

func ToBlackjackRoundResponse(round model.BlackjackRound) dto.RoundResponse {
	return dto.RoundResponse{
		Phase:         string(round.Phase),
		PlayerHand:    toCardViews(round.PlayerHand),
		DealerHand:    toCardViews(round.DealerHand),
		PlayerValue:   round.PlayerValue,
		DealerValue:   round.DealerValue,
		Bet:           round.Bet,
		Outcome:       string(round.Outcome),
		Payout:        round.Payout,
		Balance:       round.Balance,
		DeckRemaining: round.DeckRemaining,
	}
}

func toCardViews(hand deck.Hand) []dto.CardView {
	views := make([]dto.CardView, 0, len(hand))
	for _, c := range hand {
		views = append(views, dto.CardView{
			Suit:  c.Suit,
			Rank:  c.Rank,
			Value: c.Value,
		})
	}
	return views
}

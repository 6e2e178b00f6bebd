package model

import "virtual_casino/pkg/deck"

// BlackjackPhase - фаза раунда блэкджека
type BlackjackPhase string

const (
	PhaseBetting    BlackjackPhase = "betting"
	PhasePlaying    BlackjackPhase = "playing"
	PhaseDealerTurn BlackjackPhase = "dealer_turn"
	PhaseEnded      BlackjackPhase = "ended"
)

// BlackjackOutcome - исход завершенного раунда
type BlackjackOutcome string

const (
	OutcomeNone BlackjackOutcome = ""
	OutcomeWin  BlackjackOutcome = "win"
	OutcomeLose BlackjackOutcome = "lose"
	OutcomePush BlackjackOutcome = "push"
)

// BlackjackState - состояние стола одного пользователя.
// Живет между запросами; колода переносится между раундами
// и пересобирается только по порогам дозаполнения
type BlackjackState struct {
	Phase      BlackjackPhase
	Deck       *deck.Deck
	PlayerHand deck.Hand
	DealerHand deck.Hand
	Bet        int
	Outcome    BlackjackOutcome
	Payout     int // Начислено по итогам раунда (брутто, со ставкой)
}

// NewBlackjackState - стол в начальной фазе приема ставок, колода еще не собрана
func NewBlackjackState() *BlackjackState {
	return &BlackjackState{
		Phase: PhaseBetting,
	}
}

// BlackjackRound - снимок стола для клиента после очередного действия
type BlackjackRound struct {
	Phase         BlackjackPhase
	PlayerHand    deck.Hand
	DealerHand    deck.Hand
	PlayerValue   int
	DealerValue   int
	Bet           int
	Outcome       BlackjackOutcome
	Payout        int
	Balance       int
	DeckRemaining int
}

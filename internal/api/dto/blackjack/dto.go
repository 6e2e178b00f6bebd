package blackjack

type PlaceBetRequest struct {
	Amount int `json:"amount"` // Размер ставки (положительное целое)
}

type CardView struct {
	Suit  string `json:"suit"`  // ♠ ♣ ♥ ♦
	Rank  string `json:"rank"`  // A, 2-10, J, Q, K
	Value int    `json:"value"` // Номинал
}

type RoundResponse struct {
	Phase         string     `json:"phase"`          // betting / playing / dealer_turn / ended
	PlayerHand    []CardView `json:"player_hand"`    // Рука игрока
	DealerHand    []CardView `json:"dealer_hand"`    // Рука дилера
	PlayerValue   int        `json:"player_value"`   // Стоимость руки игрока
	DealerValue   int        `json:"dealer_value"`   // Стоимость руки дилера
	Bet           int        `json:"bet"`            // Текущая ставка
	Outcome       string     `json:"outcome"`        // win / lose / push, пусто пока раунд идет
	Payout        int        `json:"payout"`         // Начислено по итогам раунда
	Balance       int        `json:"balance"`        // Баланс после
	DeckRemaining int        `json:"deck_remaining"` // Остаток карт в колоде
}

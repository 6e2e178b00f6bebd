package roulette

type SpinRequest struct {
	Bet    int    `json:"bet"`              // Размер ставки
	Kind   string `json:"kind"`             // straight / color / even_odd
	Number int    `json:"number,omitempty"` // Для straight: 0-36
	Color  string `json:"color,omitempty"`  // Для color: red / black
	Parity string `json:"parity,omitempty"` // Для even_odd: even / odd
}

type SpinResponse struct {
	Pocket     PocketView `json:"pocket"`     // Выпавший карман
	Won        bool       `json:"won"`        // Совпала ли ставка
	Multiplier int        `json:"multiplier"` // Множитель выигрыша
	Payout     int        `json:"payout"`     // Полный возврат со ставкой
	Balance    int        `json:"balance"`    // Баланс после
}

type PocketView struct {
	Label  string `json:"label"`  // "0", "00", "1".."36"
	Number int    `json:"number"` // Числовое значение
	Color  string `json:"color"`  // red / black / green
}

package slots

type SpinRequest struct {
	Bet int `json:"bet"` // Размер ставки
}

type SpinResponse struct {
	Reels   [3]string `json:"reels"`   // Символы барабанов
	Won     bool      `json:"won"`     // Три одинаковых
	Payout  int       `json:"payout"`  // Выигрыш поверх ставки (нетто)
	Balance int       `json:"balance"` // Баланс после
}

type InfoResponse struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	RTP         float64        `json:"rtp"`
	Volatility  string         `json:"volatility"`
	Paytable    map[string]int `json:"paytable"` // Символ -> множитель за три в ряд
}

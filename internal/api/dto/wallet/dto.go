package wallet

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма депозита
}

type BalanceResponse struct {
	Balance int `json:"balance"` // Текущий баланс фишек
}

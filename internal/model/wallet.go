package model

// WalletData - текущее состояние кошелька пользователя.
// Баланс живет только в памяти процесса и не переживает рестарт
type WalletData struct {
	Balance int
}

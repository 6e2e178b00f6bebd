package wallet_repo

import (
	"sync"

	"virtual_casino/internal/model"
	"virtual_casino/internal/repository"
)

// Реализация кошелька в памяти процесса.
// Балансы сессионные и не переживают рестарт: по истории проекта
// фишки живут только в состоянии клиента, персистентность не нужна
type WalletRepo struct {
	mtx             sync.Mutex
	balances        map[int]int
	startingBalance int
}

// NewWalletRepository - кошелек, выдающий startingBalance фишек при первом обращении
func NewWalletRepository(startingBalance int) repository.WalletRepository {
	return &WalletRepo{
		balances:        make(map[int]int),
		startingBalance: startingBalance,
	}
}

// balance без блокировки, вызывающие методы держат mtx
func (r *WalletRepo) balance(userID int) int {
	b, ok := r.balances[userID]
	if !ok {
		b = r.startingBalance
		r.balances[userID] = b
	}
	return b
}

// Balance - текущий баланс пользователя
func (r *WalletRepo) Balance(userID int) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.balance(userID)
}

// Debit списывает ставку. При нехватке фишек баланс не меняется
func (r *WalletRepo) Debit(userID int, amount int) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	b := r.balance(userID)
	if amount > b {
		return b, model.ErrInsufficientChips
	}

	b -= amount
	r.balances[userID] = b
	return b, nil
}

// Credit начисляет выигрыш или депозит
func (r *WalletRepo) Credit(userID int, amount int) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	b := r.balance(userID) + amount
	r.balances[userID] = b
	return b
}

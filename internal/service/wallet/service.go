package wallet

import (
	"context"

	"virtual_casino/internal/model"
	"virtual_casino/internal/repository"
	"virtual_casino/internal/service"
)

type serv struct {
	repo repository.WalletRepository
}

// NewWalletService - кошелек поверх сериализованного счетчика фишек
func NewWalletService(repo repository.WalletRepository) service.WalletService {
	return &serv{
		repo: repo,
	}
}

func (s *serv) Balance(_ context.Context, userID int) (int, error) {
	return s.repo.Balance(userID), nil
}

// Debit списывает ставку в момент начала игры (Deal / Spin)
func (s *serv) Debit(_ context.Context, userID int, amount int) (int, error) {
	if amount <= 0 {
		return s.repo.Balance(userID), model.ErrInvalidBet
	}
	return s.repo.Debit(userID, amount)
}

// Credit начисляет выигрыш
func (s *serv) Credit(_ context.Context, userID int, amount int) (int, error) {
	if amount == 0 {
		return s.repo.Balance(userID), nil
	}
	return s.repo.Credit(userID, amount), nil
}

// Deposit пополняет кошелек (демо-фишки, денег здесь нет)
func (s *serv) Deposit(_ context.Context, userID int, amount int) (int, error) {
	if amount <= 0 {
		return s.repo.Balance(userID), model.ErrInvalidBet
	}
	return s.repo.Credit(userID, amount), nil
}

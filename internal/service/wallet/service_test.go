package wallet

import (
	"context"
	"errors"
	"testing"

	"virtual_casino/internal/model"
	"virtual_casino/internal/repository/wallet_repo"
)

func TestDepositRejectsNonPositive(t *testing.T) {
	s := NewWalletService(wallet_repo.NewWalletRepository(1000))
	ctx := context.Background()

	for _, amount := range []int{0, -10} {
		balance, err := s.Deposit(ctx, 1, amount)
		if !errors.Is(err, model.ErrInvalidBet) {
			t.Errorf("Deposit(%d) err = %v, want ErrInvalidBet", amount, err)
		}
		if balance != 1000 {
			t.Errorf("Deposit(%d) balance = %d, want untouched 1000", amount, balance)
		}
	}
}

func TestDepositAddsChips(t *testing.T) {
	s := NewWalletService(wallet_repo.NewWalletRepository(1000))

	balance, err := s.Deposit(context.Background(), 1, 250)
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if balance != 1250 {
		t.Errorf("balance = %d, want 1250", balance)
	}
}

func TestCreditZeroIsNoop(t *testing.T) {
	s := NewWalletService(wallet_repo.NewWalletRepository(1000))

	balance, err := s.Credit(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if balance != 1000 {
		t.Errorf("balance = %d, want 1000", balance)
	}
}

func TestDebitRejectsNonPositive(t *testing.T) {
	s := NewWalletService(wallet_repo.NewWalletRepository(1000))

	_, err := s.Debit(context.Background(), 1, 0)
	if !errors.Is(err, model.ErrInvalidBet) {
		t.Fatalf("err = %v, want ErrInvalidBet", err)
	}
}

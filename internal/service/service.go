package service

import (
	"context"

	"virtual_casino/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

// WalletService - внешний для движков держатель баланса.
// Движки только просят списания (ставка) и начисления (выигрыш)
type WalletService interface {
	Balance(ctx context.Context, userID int) (int, error)
	Debit(ctx context.Context, userID int, amount int) (int, error)
	Credit(ctx context.Context, userID int, amount int) (int, error)
	Deposit(ctx context.Context, userID int, amount int) (int, error)
}

type BlackjackService interface {
	PlaceBet(ctx context.Context, userID int, amount int) (*model.BlackjackRound, error)
	Deal(ctx context.Context, userID int) (*model.BlackjackRound, error)
	Hit(ctx context.Context, userID int) (*model.BlackjackRound, error)
	Stand(ctx context.Context, userID int) (*model.BlackjackRound, error)
	NewHand(ctx context.Context, userID int) (*model.BlackjackRound, error)
	State(ctx context.Context, userID int) (*model.BlackjackRound, error)
}

type RouletteService interface {
	Spin(ctx context.Context, userID int, req model.RouletteSpin) (*model.RouletteSpinResult, error)
}

type SlotsService interface {
	Spin(ctx context.Context, userID int, req model.SlotSpin) (*model.SlotSpinResult, error)
	Info() model.SlotGameInfo
}

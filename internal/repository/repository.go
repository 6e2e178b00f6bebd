package repository

import (
	"context"

	"virtual_casino/internal/model"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// WalletRepository - единственный разделяемый между движками ресурс:
// сериализованный счетчик фишек per-user. Списание и начисление
// выполняются под одной блокировкой, повторного входа нет
type WalletRepository interface {
	Balance(userID int) int
	Debit(userID int, amount int) (int, error)
	Credit(userID int, amount int) int
}

// BlackjackStateRepository хранит столы блэкджека между запросами.
// Do сериализует доступ: пока fn работает со столом, никакое другое
// действие того же пользователя не может вклиниться в розыгрыш
type BlackjackStateRepository interface {
	Do(userID int, fn func(state *model.BlackjackState) error) error
}

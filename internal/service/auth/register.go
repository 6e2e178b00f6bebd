package auth

import (
	"context"
	"time"

	"virtual_casino/internal/model"
	"virtual_casino/pkg/pass"
	"virtual_casino/pkg/token"
)

// Register создает игрока и сразу открывает ему сессию.
// Создание пользователя и сессии идет одной транзакцией:
// игрок без сессии или сессия без игрока в БД не появляются
func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	data := &model.AuthData{}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		userID, err := s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}
		user.ID = userID

		data.SessionID = generateSessionID()

		refreshToken, err := token.GenerateRefreshToken()
		if err != nil {
			return err
		}
		data.RefreshToken = refreshToken

		err = s.authRepo.CreateSession(ctx, &model.Session{
			ID:           data.SessionID,
			UserID:       userID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
		if err != nil {
			return err
		}

		data.AccessToken, err = token.GenerateAccessToken(
			user,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

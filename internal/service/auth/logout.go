package auth

import "context"

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Закрываем сессию - повторный logout той же сессии безвреден
	return s.authRepo.DeleteSession(ctx, sessionID)
}

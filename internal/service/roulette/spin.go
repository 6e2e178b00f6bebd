package roulette

import (
	"context"

	"virtual_casino/internal/model"
)

// Spin разыгрывает один спин: проверяет выбор, списывает ставку,
// равновероятно выбирает карман и начисляет выплату при совпадении
func (s *serv) Spin(ctx context.Context, userID int, req model.RouletteSpin) (*model.RouletteSpinResult, error) {
	if req.Bet <= 0 {
		return nil, model.ErrInvalidBet
	}
	if err := req.Selection.Validate(); err != nil {
		return nil, err
	}

	// Списание до вращения: после него спин доигрывается до конца
	if _, err := s.wallet.Debit(ctx, userID, req.Bet); err != nil {
		return nil, err
	}

	// Каждый из 38 карманов равновероятен независимо от выбора игрока
	pocket := model.RouletteWheel[s.rng.IntN(len(model.RouletteWheel))]

	won, multiplier := s.resolve(req.Selection, pocket)

	res := &model.RouletteSpinResult{
		Pocket: pocket,
		Won:    won,
	}

	if won {
		res.Multiplier = multiplier
		// Полный возврат со ставкой: bet * (multiplier + 1)
		res.Payout = req.Bet * (multiplier + 1)

		balance, err := s.wallet.Credit(ctx, userID, res.Payout)
		if err != nil {
			return nil, err
		}
		res.Balance = balance
		return res, nil
	}

	balance, err := s.wallet.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	res.Balance = balance
	return res, nil
}

// resolve сверяет выбор с выпавшим карманом.
// Зеленые карманы (0 и 00) не совпадают ни с цветом, ни с четностью:
// ставки чет/нечет на них всегда проигрывают
func (s *serv) resolve(sel model.RouletteSelection, pocket model.RoulettePocket) (bool, int) {
	switch sel.Kind {
	case model.BetStraight:
		// Ставка на номер не различает 0 и 00: оба зеленые, но 00
		// имеет собственную метку и со ставкой на 0 не совпадает
		if pocket.Label == "00" {
			return false, 0
		}
		if sel.Number == pocket.Number {
			return true, s.cfg.StraightMultiplier()
		}
	case model.BetColor:
		if sel.Color == pocket.Color {
			return true, s.cfg.EvenMoneyMultiplier()
		}
	case model.BetEvenOdd:
		if pocket.IsZero() {
			return false, 0
		}
		isEven := pocket.Number%2 == 0
		if (sel.Parity == model.ParityEven && isEven) || (sel.Parity == model.ParityOdd && !isEven) {
			return true, s.cfg.EvenMoneyMultiplier()
		}
	}
	return false, 0
}

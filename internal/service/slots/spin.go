package slots

import (
	"context"

	"virtual_casino/internal/model"
)

// Spin списывает ставку, независимо семплирует три барабана
// и при трех одинаковых символах начисляет выигрыш по таблице выплат.
// В отличие от рулетки выплата нетто: списание ставки и начисление
// выигрыша - две отдельные операции кошелька, а не один перевод
func (s *serv) Spin(ctx context.Context, userID int, req model.SlotSpin) (*model.SlotSpinResult, error) {
	if req.Bet <= 0 {
		return nil, model.ErrInvalidBet
	}

	balance, err := s.wallet.Debit(ctx, userID, req.Bet)
	if err != nil {
		return nil, err
	}

	var reels [3]model.SlotSymbol
	for i := range reels {
		reels[i] = model.SlotSymbols[s.rng.IntN(len(model.SlotSymbols))]
	}

	res := &model.SlotSpinResult{
		Reels:   reels,
		Balance: balance,
	}

	// Выигрывают только три одинаковых символа
	if reels[0] == reels[1] && reels[1] == reels[2] {
		res.Won = true
		res.Payout = req.Bet * s.cfg.Paytable()[reels[0]]

		res.Balance, err = s.wallet.Credit(ctx, userID, res.Payout)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

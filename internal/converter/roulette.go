package converter

import (
	dto "virtual_casino/internal/api/dto/roulette"
	"virtual_casino/internal/model"
)

// ToRouletteSpin собирает модель спина из запроса.
// Выбор взаимоисключающий: заполняется только поле выбранного вида,
// остальные сбрасываются сеттерами модели
func ToRouletteSpin(req dto.SpinRequest) model.RouletteSpin {
	var sel model.RouletteSelection
	switch model.RouletteBetKind(req.Kind) {
	case model.BetStraight:
		sel.SetStraight(req.Number)
	case model.BetColor:
		sel.SetColor(model.RouletteColor(req.Color))
	case model.BetEvenOdd:
		sel.SetEvenOdd(model.RouletteParity(req.Parity))
	default:
		sel = model.RouletteSelection{Kind: model.RouletteBetKind(req.Kind)}
	}

	return model.RouletteSpin{
		Bet:       req.Bet,
		Selection: sel,
	}
}

func ToRouletteSpinResponse(res model.RouletteSpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Pocket: dto.PocketView{
			Label:  res.Pocket.Label,
			Number: res.Pocket.Number,
			Color:  string(res.Pocket.Color),
		},
		Won:        res.Won,
		Multiplier: res.Multiplier,
		Payout:     res.Payout,
		Balance:    res.Balance,
	}
}

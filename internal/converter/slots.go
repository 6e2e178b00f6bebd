package converter

import (
	dto "virtual_casino/internal/api/dto/slots"
	"virtual_casino/internal/model"
)

func ToSlotSpin(req dto.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		Bet: req.Bet,
	}
}

func ToSlotSpinResponse(res model.SlotSpinResult) dto.SpinResponse {
	var reels [3]string
	for i, sym := range res.Reels {
		reels[i] = string(sym)
	}

	return dto.SpinResponse{
		Reels:   reels,
		Won:     res.Won,
		Payout:  res.Payout,
		Balance: res.Balance,
	}
}

func ToSlotInfoResponse(info model.SlotGameInfo) dto.InfoResponse {
	paytable := make(map[string]int, len(info.Paytable))
	for sym, mult := range info.Paytable {
		paytable[string(sym)] = mult
	}

	return dto.InfoResponse{
		Name:        info.Name,
		Description: info.Description,
		RTP:         info.RTP,
		Volatility:  info.Volatility,
		Paytable:    paytable,
	}
}

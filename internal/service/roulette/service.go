package roulette

import (
	"virtual_casino/internal/config"
	"virtual_casino/internal/service"
	"virtual_casino/pkg/rng"
)

type serv struct {
	cfg    config.RouletteConfig
	wallet service.WalletService
	rng    rng.Source
}

// NewRouletteService - движок американской рулетки (38 карманов).
// Постоянного состояния между спинами нет: выбор ставки приходит с запросом
func NewRouletteService(
	cfg config.RouletteConfig,
	wallet service.WalletService,
	src rng.Source,
) service.RouletteService {
	return &serv{
		cfg:    cfg,
		wallet: wallet,
		rng:    src,
	}
}

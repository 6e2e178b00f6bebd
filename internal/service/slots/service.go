package slots

import (
	"virtual_casino/internal/config"
	"virtual_casino/internal/model"
	"virtual_casino/internal/service"
	"virtual_casino/pkg/rng"
)

type serv struct {
	cfg    config.SlotsConfig
	wallet service.WalletService
	rng    rng.Source
}

// NewSlotsService - трехбарабанный слот с равновероятными символами,
// без взвешивания и без подкрутки "почти выигрышей"
func NewSlotsService(
	cfg config.SlotsConfig,
	wallet service.WalletService,
	src rng.Source,
) service.SlotsService {
	return &serv{
		cfg:    cfg,
		wallet: wallet,
		rng:    src,
	}
}

// Info - карточка игры для витрины. RTP здесь справочный,
// движок его не поддерживает как инвариант
func (s *serv) Info() model.SlotGameInfo {
	return s.cfg.Info()
}

package config

import (
	"time"

	"virtual_casino/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type SlotsConfig interface {
	Paytable() map[model.SlotSymbol]int
	Info() model.SlotGameInfo
}

type RouletteConfig interface {
	StraightMultiplier() int
	EvenMoneyMultiplier() int
}

type WalletConfig interface {
	StartingBalance() int
}

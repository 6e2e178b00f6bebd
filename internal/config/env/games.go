package env

import (
	"fmt"
	"os"

	"virtual_casino/internal/config"
	"virtual_casino/internal/model"

	"gopkg.in/yaml.v3"
)

// gamesFile - корень config.yaml
type gamesFile struct {
	Slots    slotsYAML    `yaml:"slots"`
	Roulette rouletteYAML `yaml:"roulette"`
	Wallet   walletYAML   `yaml:"wallet"`
}

type slotsYAML struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	RTP         float64        `yaml:"rtp"`
	Volatility  string         `yaml:"volatility"`
	Paytable    map[string]int `yaml:"paytable"` // Символ -> множитель за три в ряд
}

type rouletteYAML struct {
	StraightMultiplier  int `yaml:"straight_multiplier"`
	EvenMoneyMultiplier int `yaml:"even_money_multiplier"`
}

type walletYAML struct {
	StartingBalance int `yaml:"starting_balance"`
}

func loadGamesFile(path string) (*gamesFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games config: %w", err)
	}

	var file gamesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse games config: %w", err)
	}

	return &file, nil
}

type slotsConfig struct {
	info     model.SlotGameInfo
	paytable map[model.SlotSymbol]int
}

// NewSlotsConfigFromYAML читает таблицу выплат слота из config.yaml.
// Таблица обязана покрывать все пять символов алфавита
func NewSlotsConfigFromYAML(path string) (config.SlotsConfig, error) {
	file, err := loadGamesFile(path)
	if err != nil {
		return nil, err
	}

	paytable := make(map[model.SlotSymbol]int, len(file.Slots.Paytable))
	for sym, mult := range file.Slots.Paytable {
		paytable[model.SlotSymbol(sym)] = mult
	}

	for _, sym := range model.SlotSymbols {
		if _, ok := paytable[sym]; !ok {
			return nil, fmt.Errorf("slots paytable misses symbol %q", sym)
		}
	}

	return &slotsConfig{
		info: model.SlotGameInfo{
			Name:        file.Slots.Name,
			Description: file.Slots.Description,
			RTP:         file.Slots.RTP,
			Volatility:  file.Slots.Volatility,
			Paytable:    paytable,
		},
		paytable: paytable,
	}, nil
}

func (cfg *slotsConfig) Paytable() map[model.SlotSymbol]int {
	return cfg.paytable
}

func (cfg *slotsConfig) Info() model.SlotGameInfo {
	return cfg.info
}

type rouletteConfig struct {
	straight  int
	evenMoney int
}

// NewRouletteConfigFromYAML читает множители выплат рулетки из config.yaml
func NewRouletteConfigFromYAML(path string) (config.RouletteConfig, error) {
	file, err := loadGamesFile(path)
	if err != nil {
		return nil, err
	}

	if file.Roulette.StraightMultiplier <= 0 || file.Roulette.EvenMoneyMultiplier <= 0 {
		return nil, fmt.Errorf("roulette multipliers must be positive")
	}

	return &rouletteConfig{
		straight:  file.Roulette.StraightMultiplier,
		evenMoney: file.Roulette.EvenMoneyMultiplier,
	}, nil
}

func (cfg *rouletteConfig) StraightMultiplier() int {
	return cfg.straight
}

func (cfg *rouletteConfig) EvenMoneyMultiplier() int {
	return cfg.evenMoney
}

type walletConfig struct {
	startingBalance int
}

// NewWalletConfigFromYAML читает стартовый баланс фишек из config.yaml
func NewWalletConfigFromYAML(path string) (config.WalletConfig, error) {
	file, err := loadGamesFile(path)
	if err != nil {
		return nil, err
	}

	if file.Wallet.StartingBalance < 0 {
		return nil, fmt.Errorf("starting balance must not be negative")
	}

	return &walletConfig{
		startingBalance: file.Wallet.StartingBalance,
	}, nil
}

func (cfg *walletConfig) StartingBalance() int {
	return cfg.startingBalance
}

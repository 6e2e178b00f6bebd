package model

// SlotSymbol - символ барабана
type SlotSymbol string

const (
	SymbolSeven   SlotSymbol = "7"
	SymbolCherry  SlotSymbol = "Cherry"
	SymbolLemon   SlotSymbol = "Lemon"
	SymbolOrange  SlotSymbol = "Orange"
	SymbolDiamond SlotSymbol = "Diamond"
)

// SlotSymbols - алфавит барабана, каждый символ равновероятен
var SlotSymbols = [5]SlotSymbol{SymbolSeven, SymbolCherry, SymbolLemon, SymbolOrange, SymbolDiamond}

type SlotSpin struct {
	Bet int
}

// SlotSpinResult - результат одного спина.
// В отличие от рулетки Payout здесь нетто: выигрыш начисляется
// поверх уже списанной ставки отдельной операцией
type SlotSpinResult struct {
	Reels   [3]SlotSymbol
	Won     bool
	Payout  int
	Balance int
}

// SlotGameInfo - карточка игры для витрины (название, RTP, таблица выплат)
type SlotGameInfo struct {
	Name        string
	Description string
	RTP         float64
	Volatility  string
	Paytable    map[SlotSymbol]int
}

package model

// RouletteColor - цвет кармана колеса
type RouletteColor string

const (
	Red   RouletteColor = "red"
	Black RouletteColor = "black"
	Green RouletteColor = "green"
)

// RoulettePocket - один из 38 карманов американского колеса.
// 00 - отдельный карман со своей меткой, а не переиспользованный ноль.
// Зеленые карманы (0 и 00) не считаются ни четными, ни нечетными
type RoulettePocket struct {
	Label  string        // "0", "00", "1".."36"
	Number int           // Числовое значение, у обоих зеро - 0
	Color  RouletteColor
}

// IsZero - карман дома (0 или 00)
func (p RoulettePocket) IsZero() bool {
	return p.Color == Green
}

// RouletteWheel - раскладка американского колеса: 0, 00 и 1-36
// со стандартным чередованием красного и черного
var RouletteWheel = [38]RoulettePocket{
	{Label: "0", Number: 0, Color: Green},
	{Label: "00", Number: 0, Color: Green},
	{Label: "3", Number: 3, Color: Red},
	{Label: "2", Number: 2, Color: Black},
	{Label: "1", Number: 1, Color: Red},
	{Label: "6", Number: 6, Color: Black},
	{Label: "5", Number: 5, Color: Red},
	{Label: "4", Number: 4, Color: Black},
	{Label: "9", Number: 9, Color: Red},
	{Label: "8", Number: 8, Color: Black},
	{Label: "7", Number: 7, Color: Red},
	{Label: "12", Number: 12, Color: Red},
	{Label: "11", Number: 11, Color: Black},
	{Label: "10", Number: 10, Color: Black},
	{Label: "15", Number: 15, Color: Black},
	{Label: "14", Number: 14, Color: Red},
	{Label: "13", Number: 13, Color: Black},
	{Label: "18", Number: 18, Color: Red},
	{Label: "17", Number: 17, Color: Black},
	{Label: "16", Number: 16, Color: Red},
	{Label: "21", Number: 21, Color: Red},
	{Label: "20", Number: 20, Color: Black},
	{Label: "19", Number: 19, Color: Red},
	{Label: "24", Number: 24, Color: Black},
	{Label: "23", Number: 23, Color: Red},
	{Label: "22", Number: 22, Color: Black},
	{Label: "27", Number: 27, Color: Red},
	{Label: "26", Number: 26, Color: Black},
	{Label: "25", Number: 25, Color: Red},
	{Label: "30", Number: 30, Color: Red},
	{Label: "29", Number: 29, Color: Black},
	{Label: "28", Number: 28, Color: Black},
	{Label: "33", Number: 33, Color: Black},
	{Label: "32", Number: 32, Color: Red},
	{Label: "31", Number: 31, Color: Black},
	{Label: "36", Number: 36, Color: Red},
	{Label: "35", Number: 35, Color: Black},
	{Label: "34", Number: 34, Color: Red},
}

// RouletteBetKind - тип ставки
type RouletteBetKind string

const (
	BetStraight RouletteBetKind = "straight"
	BetColor    RouletteBetKind = "color"
	BetEvenOdd  RouletteBetKind = "even_odd"
)

// RouletteParity - выбор в ставке чет/нечет
type RouletteParity string

const (
	ParityEven RouletteParity = "even"
	ParityOdd  RouletteParity = "odd"
)

// RouletteSelection - выбор ставки на спин.
// Виды ставок взаимоисключающие: установка одного вида очищает остальные
type RouletteSelection struct {
	Kind   RouletteBetKind
	Number int            // Для straight
	Color  RouletteColor  // Для color
	Parity RouletteParity // Для even_odd
}

// SetStraight - ставка на конкретный номер, очищает остальные виды
func (s *RouletteSelection) SetStraight(number int) {
	*s = RouletteSelection{Kind: BetStraight, Number: number}
}

// SetColor - ставка на цвет, очищает остальные виды
func (s *RouletteSelection) SetColor(color RouletteColor) {
	*s = RouletteSelection{Kind: BetColor, Color: color}
}

// SetEvenOdd - ставка на чет/нечет, очищает остальные виды
func (s *RouletteSelection) SetEvenOdd(parity RouletteParity) {
	*s = RouletteSelection{Kind: BetEvenOdd, Parity: parity}
}

// Validate проверяет, что выбран ровно один корректный вид ставки
func (s RouletteSelection) Validate() error {
	switch s.Kind {
	case BetStraight:
		if s.Number < 0 || s.Number > 36 {
			return ErrInvalidSelection
		}
	case BetColor:
		if s.Color != Red && s.Color != Black {
			return ErrInvalidSelection
		}
	case BetEvenOdd:
		if s.Parity != ParityEven && s.Parity != ParityOdd {
			return ErrInvalidSelection
		}
	case "":
		return ErrNoBetSelected
	default:
		return ErrInvalidSelection
	}
	return nil
}

type RouletteSpin struct {
	Bet       int
	Selection RouletteSelection
}

type RouletteSpinResult struct {
	Pocket     RoulettePocket
	Won        bool
	Multiplier int // Множитель выигрыша (35 straight, 1 остальные)
	Payout     int // Полный возврат: bet * (multiplier + 1), со ставкой
	Balance    int
}

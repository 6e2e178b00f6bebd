package deck

import (
	"errors"
	"strconv"

	"virtual_casino/pkg/rng"
)

// ErrEmptyDeck - попытка взять карту из пустой колоды.
// При соблюдении порогов дозаполнения (см. сервис блэкджека) не должна возникать
var ErrEmptyDeck = errors.New("deck is empty")

// Масти
const (
	Spades   = "♠"
	Clubs    = "♣"
	Hearts   = "♥"
	Diamonds = "♦"
)

var suits = []string{Spades, Clubs, Hearts, Diamonds}

var ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card - одна игральная карта. Неизменяема после создания
type Card struct {
	Suit  string // Масть
	Rank  string // Достоинство: A, 2-10, J, Q, K
	Value int    // Номинал: A=11 (понижается при подсчете руки), J/Q/K=10
}

// NewCard создает карту, вычисляя номинал по достоинству
func NewCard(suit, rank string) Card {
	return Card{
		Suit:  suit,
		Rank:  rank,
		Value: rankValue(rank),
	}
}

func rankValue(rank string) int {
	switch rank {
	case "A":
		return 11
	case "J", "Q", "K":
		return 10
	default:
		v, _ := strconv.Atoi(rank)
		return v
	}
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

// Deck - упорядоченная колода, карты снимаются с верха
type Deck struct {
	cards []Card
}

// New собирает полную колоду из 52 карт.
// Порядок до перемешивания не определен контрактом
func New() *Deck {
	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, NewCard(s, r))
		}
	}
	return &Deck{cards: cards}
}

// FromCards собирает колоду из готового списка карт (нужно для тестов и отладки)
func FromCards(cards []Card) *Deck {
	cp := make([]Card, len(cards))
	copy(cp, cards)
	return &Deck{cards: cp}
}

// Shuffle перемешивает колоду алгоритмом Фишера-Йетса.
// Каждая перестановка равновероятна при равномерном источнике
func (d *Deck) Shuffle(src rng.Source) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw снимает верхнюю карту
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Len - сколько карт осталось
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}

// Hand - рука игрока или дилера
type Hand []Card

// Value считает стоимость руки.
// Тузы считаются по 11, затем по одному понижаются до 1,
// пока сумма больше 21 и есть туз, посчитанный как 11.
// Возвращается максимальная сумма <= 21, либо минимально возможная при переборе
func (h Hand) Value() int {
	value := 0
	aces := 0
	for _, c := range h {
		if c.Rank == "A" {
			aces++
		}
		value += c.Value
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value
}

package blackjack

import (
	"context"

	"virtual_casino/internal/model"
	"virtual_casino/internal/repository"
	"virtual_casino/internal/service"
	"virtual_casino/pkg/rng"
)

const (
	// Пороги дозаполнения колоды: перед раздачей и перед добором.
	// Дозаполнение пересобирает колоду целиком, сброс не возвращается -
	// подсчет карт через перетасовки сознательно не поддерживается
	deckLowWaterDeal = 10
	deckLowWaterDraw = 5

	// Дилер добирает, пока рука <= 16, и останавливается на любых 17,
	// включая мягкие
	dealerDrawLimit = 16

	// Выигрыш выплачивается брутто: ставка с множителем, включая саму ставку
	winMultiplier = 2
)

type serv struct {
	stateRepo repository.BlackjackStateRepository
	wallet    service.WalletService
	rng       rng.Source
}

// NewBlackjackService - движок блэкджека поверх хранилища столов и кошелька
func NewBlackjackService(
	stateRepo repository.BlackjackStateRepository,
	wallet service.WalletService,
	src rng.Source,
) service.BlackjackService {
	return &serv{
		stateRepo: stateRepo,
		wallet:    wallet,
		rng:       src,
	}
}

// State - снимок стола без изменения состояния
func (s *serv) State(ctx context.Context, userID int) (*model.BlackjackRound, error) {
	var round *model.BlackjackRound
	err := s.stateRepo.Do(userID, func(st *model.BlackjackState) error {
		var err error
		round, err = s.snapshot(ctx, userID, st)
		return err
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

// snapshot собирает снимок стола для клиента.
// Руки копируются, чтобы клиентский снимок не делил память со столом
func (s *serv) snapshot(ctx context.Context, userID int, st *model.BlackjackState) (*model.BlackjackRound, error) {
	balance, err := s.wallet.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	playerHand := append(st.PlayerHand[:0:0], st.PlayerHand...)
	dealerHand := append(st.DealerHand[:0:0], st.DealerHand...)

	return &model.BlackjackRound{
		Phase:         st.Phase,
		PlayerHand:    playerHand,
		DealerHand:    dealerHand,
		PlayerValue:   playerHand.Value(),
		DealerValue:   dealerHand.Value(),
		Bet:           st.Bet,
		Outcome:       st.Outcome,
		Payout:        st.Payout,
		Balance:       balance,
		DeckRemaining: st.Deck.Len(),
	}, nil
}

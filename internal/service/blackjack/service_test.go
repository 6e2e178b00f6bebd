package blackjack

import (
	"context"
	"errors"
	"testing"

	"virtual_casino/internal/model"
	"virtual_casino/internal/repository"
	"virtual_casino/internal/repository/blackjack_state_repo"
	"virtual_casino/internal/repository/wallet_repo"
	"virtual_casino/internal/service"
	"virtual_casino/internal/service/wallet"
	"virtual_casino/pkg/deck"
	"virtual_casino/pkg/rng"
)

const (
	testUserID     = 1
	testStartChips = 1000
)

func newTestTable() (service.BlackjackService, repository.BlackjackStateRepository, service.WalletService) {
	stateRepo := blackjack_state_repo.NewBlackjackStateRepository()
	walletServ := wallet.NewWalletService(wallet_repo.NewWalletRepository(testStartChips))
	bj := NewBlackjackService(stateRepo, walletServ, rng.NewSeeded(7))
	return bj, stateRepo, walletServ
}

func c(rank string) deck.Card {
	return deck.NewCard(deck.Spades, rank)
}

// stackDeck собирает колоду, выдающую карты в перечисленном порядке
func stackDeck(cards ...deck.Card) *deck.Deck {
	rev := make([]deck.Card, 0, len(cards))
	for i := len(cards) - 1; i >= 0; i-- {
		rev = append(rev, cards[i])
	}
	return deck.FromCards(rev)
}

// pad добивает колоду до порога дозаполнения, чтобы раздача
// не пересобрала подложенный порядок карт
func pad(n int) []deck.Card {
	filler := make([]deck.Card, n)
	for i := range filler {
		filler[i] = c("2")
	}
	return filler
}

func injectDeck(t *testing.T, repo repository.BlackjackStateRepository, cards ...deck.Card) {
	t.Helper()
	err := repo.Do(testUserID, func(st *model.BlackjackState) error {
		st.Deck = stackDeck(append(cards, pad(10)...)...)
		return nil
	})
	if err != nil {
		t.Fatalf("inject deck: %v", err)
	}
}

func TestPlaceBet(t *testing.T) {
	bj, _, _ := newTestTable()
	ctx := context.Background()

	round, err := bj.PlaceBet(ctx, testUserID, 100)
	if err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	if round.Bet != 100 {
		t.Errorf("bet = %d, want 100", round.Bet)
	}
	if round.Phase != model.PhaseBetting {
		t.Errorf("phase = %q, want %q", round.Phase, model.PhaseBetting)
	}
	// Фишки списываются на раздаче, не при выборе ставки
	if round.Balance != testStartChips {
		t.Errorf("balance = %d, want %d", round.Balance, testStartChips)
	}
}

func TestPlaceBetRejectsNonPositive(t *testing.T) {
	bj, _, _ := newTestTable()

	for _, amount := range []int{0, -5} {
		_, err := bj.PlaceBet(context.Background(), testUserID, amount)
		if !errors.Is(err, model.ErrInvalidBet) {
			t.Errorf("PlaceBet(%d) err = %v, want ErrInvalidBet", amount, err)
		}
	}
}

func TestPlaceBetAboveBalance(t *testing.T) {
	bj, _, _ := newTestTable()

	_, err := bj.PlaceBet(context.Background(), testUserID, testStartChips+1)
	if !errors.Is(err, model.ErrInsufficientChips) {
		t.Fatalf("err = %v, want ErrInsufficientChips", err)
	}
}

func TestPlaceBetOutsideBettingPhase(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	_ = stateRepo.Do(testUserID, func(st *model.BlackjackState) error {
		st.Phase = model.PhasePlaying
		return nil
	})

	_, err := bj.PlaceBet(context.Background(), testUserID, 10)
	if !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestDealOrderAndDebit(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 100); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	// Порядок выдачи: игрок, дилер, игрок, дилер
	injectDeck(t, stateRepo, c("A"), c("K"), c("9"), c("5"))

	round, err := bj.Deal(ctx, testUserID)
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}

	if round.Phase != model.PhasePlaying {
		t.Errorf("phase = %q, want %q", round.Phase, model.PhasePlaying)
	}
	if round.Balance != testStartChips-100 {
		t.Errorf("balance = %d, want %d", round.Balance, testStartChips-100)
	}
	if got := []string{round.PlayerHand[0].Rank, round.PlayerHand[1].Rank}; got[0] != "A" || got[1] != "9" {
		t.Errorf("player hand = %v, want [A 9]", got)
	}
	if got := []string{round.DealerHand[0].Rank, round.DealerHand[1].Rank}; got[0] != "K" || got[1] != "5" {
		t.Errorf("dealer hand = %v, want [K 5]", got)
	}
	if round.PlayerValue != 20 {
		t.Errorf("player value = %d, want 20", round.PlayerValue)
	}
	if round.DeckRemaining != 10 {
		t.Errorf("deck remaining = %d, want 10", round.DeckRemaining)
	}
}

func TestDealWithoutBet(t *testing.T) {
	bj, _, _ := newTestTable()

	_, err := bj.Deal(context.Background(), testUserID)
	if !errors.Is(err, model.ErrInvalidBet) {
		t.Fatalf("err = %v, want ErrInvalidBet", err)
	}
}

// Отклоненная раздача не трогает стол: короткая колода
// не пересобирается, если списать ставку не удалось
func TestRejectedDealKeepsDeck(t *testing.T) {
	bj, stateRepo, walletServ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 100); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	// После ставки баланс уходит ниже нее
	if _, err := walletServ.Debit(ctx, testUserID, testStartChips-50); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	_ = stateRepo.Do(testUserID, func(st *model.BlackjackState) error {
		st.Deck = stackDeck(c("5"), c("6"), c("7"), c("8"))
		return nil
	})

	_, err := bj.Deal(ctx, testUserID)
	if !errors.Is(err, model.ErrInsufficientChips) {
		t.Fatalf("err = %v, want ErrInsufficientChips", err)
	}

	round, err := bj.State(ctx, testUserID)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if round.Phase != model.PhaseBetting {
		t.Errorf("phase = %q, want %q", round.Phase, model.PhaseBetting)
	}
	if round.DeckRemaining != 4 {
		t.Errorf("deck remaining = %d, want untouched 4", round.DeckRemaining)
	}
	if round.Balance != 50 {
		t.Errorf("balance = %d, want 50", round.Balance)
	}
}

func TestDealRebuildsShortDeck(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 10); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	// Меньше 10 карт перед раздачей - колода пересобирается целиком
	_ = stateRepo.Do(testUserID, func(st *model.BlackjackState) error {
		st.Deck = stackDeck(c("5"), c("6"), c("7"), c("8"))
		return nil
	})

	round, err := bj.Deal(ctx, testUserID)
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if round.DeckRemaining != 48 {
		t.Errorf("deck remaining = %d, want 48 after rebuild", round.DeckRemaining)
	}
}

func TestHitBustEndsRound(t *testing.T) {
	bj, stateRepo, walletServ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 100); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	injectDeck(t, stateRepo, c("K"), c("2"), c("9"), c("3"), c("5"))
	if _, err := bj.Deal(ctx, testUserID); err != nil {
		t.Fatalf("Deal: %v", err)
	}

	round, err := bj.Hit(ctx, testUserID)
	if err != nil {
		t.Fatalf("Hit: %v", err)
	}

	if round.PlayerValue != 24 {
		t.Errorf("player value = %d, want 24", round.PlayerValue)
	}
	if round.Outcome != model.OutcomeLose {
		t.Errorf("outcome = %q, want %q", round.Outcome, model.OutcomeLose)
	}
	if round.Payout != 0 {
		t.Errorf("payout = %d, want 0", round.Payout)
	}
	if round.Phase != model.PhaseEnded {
		t.Errorf("phase = %q, want %q", round.Phase, model.PhaseEnded)
	}

	balance, _ := walletServ.Balance(ctx, testUserID)
	if balance != testStartChips-100 {
		t.Errorf("balance = %d, want %d", balance, testStartChips-100)
	}
}

func TestHitOutsidePlayingPhase(t *testing.T) {
	bj, _, _ := newTestTable()

	_, err := bj.Hit(context.Background(), testUserID)
	if !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestStandDealerBusts(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 100); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	// Дилер с 16 обязан добирать; добор уводит в перебор
	injectDeck(t, stateRepo, c("K"), c("K"), c("9"), c("6"), c("K"))
	if _, err := bj.Deal(ctx, testUserID); err != nil {
		t.Fatalf("Deal: %v", err)
	}

	round, err := bj.Stand(ctx, testUserID)
	if err != nil {
		t.Fatalf("Stand: %v", err)
	}

	if round.DealerValue != 26 {
		t.Errorf("dealer value = %d, want 26", round.DealerValue)
	}
	if round.Outcome != model.OutcomeWin {
		t.Errorf("outcome = %q, want %q", round.Outcome, model.OutcomeWin)
	}
	if round.Payout != 200 {
		t.Errorf("payout = %d, want 200", round.Payout)
	}
	if round.Balance != testStartChips+100 {
		t.Errorf("balance = %d, want %d", round.Balance, testStartChips+100)
	}
}

func TestStandDealerWins(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 100); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	injectDeck(t, stateRepo, c("K"), c("K"), c("7"), c("9"))
	if _, err := bj.Deal(ctx, testUserID); err != nil {
		t.Fatalf("Deal: %v", err)
	}

	round, err := bj.Stand(ctx, testUserID)
	if err != nil {
		t.Fatalf("Stand: %v", err)
	}

	if round.Outcome != model.OutcomeLose {
		t.Errorf("outcome = %q, want %q", round.Outcome, model.OutcomeLose)
	}
	if round.Payout != 0 {
		t.Errorf("payout = %d, want 0", round.Payout)
	}
	if round.Balance != testStartChips-100 {
		t.Errorf("balance = %d, want %d", round.Balance, testStartChips-100)
	}
}

func TestStandPushReturnsBet(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 100); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	injectDeck(t, stateRepo, c("K"), c("Q"), c("8"), c("8"))
	if _, err := bj.Deal(ctx, testUserID); err != nil {
		t.Fatalf("Deal: %v", err)
	}

	round, err := bj.Stand(ctx, testUserID)
	if err != nil {
		t.Fatalf("Stand: %v", err)
	}

	if round.Outcome != model.OutcomePush {
		t.Errorf("outcome = %q, want %q", round.Outcome, model.OutcomePush)
	}
	if round.Payout != 100 {
		t.Errorf("payout = %d, want 100", round.Payout)
	}
	if round.Balance != testStartChips {
		t.Errorf("balance = %d, want %d", round.Balance, testStartChips)
	}
}

func TestDealerStandsOnSoft17(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 100); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	// A+6 - мягкие 17, дилер не добирает
	injectDeck(t, stateRepo, c("K"), c("A"), c("9"), c("6"))
	if _, err := bj.Deal(ctx, testUserID); err != nil {
		t.Fatalf("Deal: %v", err)
	}

	round, err := bj.Stand(ctx, testUserID)
	if err != nil {
		t.Fatalf("Stand: %v", err)
	}

	if len(round.DealerHand) != 2 {
		t.Errorf("dealer drew on soft 17: hand = %v", round.DealerHand)
	}
	if round.DealerValue != 17 {
		t.Errorf("dealer value = %d, want 17", round.DealerValue)
	}
	if round.Outcome != model.OutcomeWin {
		t.Errorf("outcome = %q, want %q", round.Outcome, model.OutcomeWin)
	}
}

func TestStandOutsidePlayingPhase(t *testing.T) {
	bj, _, _ := newTestTable()

	_, err := bj.Stand(context.Background(), testUserID)
	if !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestNewHandAfterRound(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 100); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	injectDeck(t, stateRepo, c("K"), c("K"), c("7"), c("9"))
	if _, err := bj.Deal(ctx, testUserID); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if _, err := bj.Stand(ctx, testUserID); err != nil {
		t.Fatalf("Stand: %v", err)
	}

	round, err := bj.NewHand(ctx, testUserID)
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}

	if round.Phase != model.PhaseBetting {
		t.Errorf("phase = %q, want %q", round.Phase, model.PhaseBetting)
	}
	if len(round.PlayerHand) != 0 || len(round.DealerHand) != 0 {
		t.Errorf("hands not cleared: player %v dealer %v", round.PlayerHand, round.DealerHand)
	}
	if round.Bet != 0 || round.Outcome != model.OutcomeNone || round.Payout != 0 {
		t.Errorf("round not reset: bet %d outcome %q payout %d", round.Bet, round.Outcome, round.Payout)
	}

	// Повторный вызов из фазы приема ставок - no-op без ошибки
	again, err := bj.NewHand(ctx, testUserID)
	if err != nil {
		t.Fatalf("repeated NewHand: %v", err)
	}
	if again.Phase != model.PhaseBetting {
		t.Errorf("repeated NewHand phase = %q, want %q", again.Phase, model.PhaseBetting)
	}
}

func TestNewHandDuringPlay(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 100); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	injectDeck(t, stateRepo, c("K"), c("K"), c("7"), c("9"))
	if _, err := bj.Deal(ctx, testUserID); err != nil {
		t.Fatalf("Deal: %v", err)
	}

	_, err := bj.NewHand(ctx, testUserID)
	if !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestDeckCarriesOverBetweenRounds(t *testing.T) {
	bj, stateRepo, _ := newTestTable()
	ctx := context.Background()

	if _, err := bj.PlaceBet(ctx, testUserID, 10); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	// 14 карт: раздача заберет 4, останется 10 - выше обоих порогов
	injectDeck(t, stateRepo, c("K"), c("Q"), c("8"), c("8"))
	if _, err := bj.Deal(ctx, testUserID); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if _, err := bj.Stand(ctx, testUserID); err != nil {
		t.Fatalf("Stand: %v", err)
	}

	round, err := bj.NewHand(ctx, testUserID)
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}
	if round.DeckRemaining != 10 {
		t.Errorf("deck remaining = %d, want 10: new hand must not rebuild the deck", round.DeckRemaining)
	}
}

// Полный раунд на живом генераторе: каким бы ни был исход,
// баланс обязан сойтись с выплатой
func TestFullRoundBalanceConsistency(t *testing.T) {
	bj, _, _ := newTestTable()
	ctx := context.Background()

	const bet = 50
	if _, err := bj.PlaceBet(ctx, testUserID, bet); err != nil {
		t.Fatalf("PlaceBet: %v", err)
	}
	if _, err := bj.Deal(ctx, testUserID); err != nil {
		t.Fatalf("Deal: %v", err)
	}

	round, err := bj.Stand(ctx, testUserID)
	if err != nil {
		t.Fatalf("Stand: %v", err)
	}

	want := testStartChips - bet + round.Payout
	if round.Balance != want {
		t.Errorf("balance = %d, want %d (payout %d)", round.Balance, want, round.Payout)
	}
}

func TestStateIsReadOnly(t *testing.T) {
	bj, _, _ := newTestTable()
	ctx := context.Background()

	first, err := bj.State(ctx, testUserID)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	second, err := bj.State(ctx, testUserID)
	if err != nil {
		t.Fatalf("State: %v", err)
	}

	if first.Phase != model.PhaseBetting || second.Phase != model.PhaseBetting {
		t.Errorf("fresh table phase = %q / %q, want %q", first.Phase, second.Phase, model.PhaseBetting)
	}
	if first.Balance != second.Balance {
		t.Errorf("State mutated balance: %d vs %d", first.Balance, second.Balance)
	}
}

package blackjack_state_repo

import (
	"sync"

	"virtual_casino/internal/model"
	"virtual_casino/internal/repository"
)

// Хранилище столов блэкджека в памяти процесса.
// Стол создается лениво при первом действии пользователя
type StateRepo struct {
	mtx    sync.Mutex
	states map[int]*model.BlackjackState
}

func NewBlackjackStateRepository() repository.BlackjackStateRepository {
	return &StateRepo{
		states: make(map[int]*model.BlackjackState),
	}
}

// Do выполняет fn над столом пользователя под блокировкой.
// Если fn вернула ошибку, она пробрасывается наружу; мутации,
// сделанные fn до ошибки, остаются на совести fn - переходы
// движка обязаны проверять фазу до любых изменений
func (r *StateRepo) Do(userID int, fn func(state *model.BlackjackState) error) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	state, ok := r.states[userID]
	if !ok {
		state = model.NewBlackjackState()
		r.states[userID] = state
	}

	return fn(state)
}

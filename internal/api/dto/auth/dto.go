package auth

type RegisterRequest struct {
	Name     string `json:"name"`     // Отображаемое имя
	Login    string `json:"login"`    // Уникальный логин
	Password string `json:"password"` // Пароль в открытом виде, хэшируется сервисом
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

package model

// SessionRecord — локально закешированная личность аутентифицированного
// пользователя. Присутствие валидной записи в хранилище — единственный
// признак состояния «вошёл в систему».
type SessionRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Token — auth-cookie сервера для последующих запросов (может быть пустым).
	Token string `json:"token,omitempty"`
}

// Valid сообщает, пригодна ли запись как признак аутентификации.
// Единственное обязательное поле — непустой ID.
func (s SessionRecord) Valid() bool { return s.ID != "" }

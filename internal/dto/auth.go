package dto

// LoginRequest aceita e-mail ou CPF no campo email.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

var loginMessages = messages{
	"email.required": "E-mail não pode ser vazio",
	"senha.required": "Senha não pode ser vazia",
}

func (LoginRequest) validationMessages() messages {
	return loginMessages
}

type TokenResponse struct {
	Token string `json:"token"`
}

package models

type Role string

const (
	RoleAdmin   Role = "ROLE_ADMIN"
	RoleUsuario Role = "ROLE_USUARIO"
)

type TimeEntryType string

const (
	InicioTrabalho  TimeEntryType = "INICIO_TRABALHO"
	TerminoTrabalho TimeEntryType = "TERMINO_TRABALHO"
	InicioAlmoco    TimeEntryType = "INICIO_ALMOCO"
	TerminoAlmoco   TimeEntryType = "TERMINO_ALMOCO"
	InicioPausa     TimeEntryType = "INICIO_PAUSA"
	TerminoPausa    TimeEntryType = "TERMINO_PAUSA"
)

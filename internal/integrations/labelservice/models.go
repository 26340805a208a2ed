package labelservice

// Artist модель артиста из A&R-половины SoundPath
type Artist struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Genre      string  `json:"genre"`
	AgentName  *string `json:"agent_name"`
	AgentEmail *string `json:"agent_email"`
	Stage      string  `json:"stage"` // Этап A&R-воронки (scouting, signed, ...)
}

// ErrorResponse модель ошибки от LabelService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

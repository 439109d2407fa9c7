package apiclient

import "fmt"

// User-facing messages for well-known upstream statuses. The storefront
// surfaces these verbatim, so they stay in the shop's display language.
const (
	MsgUnauthorized = "Необходима авторизация"
	MsgForbidden    = "Доступ запрещен"
	MsgNotFound     = "Ресурс не найден"
	MsgServerError  = "Ошибка сервера"
	MsgRequestError = "Ошибка запроса"
)

// Error is the normalized upstream failure handed to callers. Transport
// failures are NOT wrapped in this type; they propagate as returned by the
// HTTP client.
type Error struct {
	Status     int
	StatusText string
	Message    string
	Details    any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func genericHTTPMessage(status int) string {
	return fmt.Sprintf("HTTP error! status: %d", status)
}

// Package response содержит типы для унифицированных JSON-ответов служебных
// конечных точек фронтенда (health, ограничение частоты). Страницы ростера
// отвечают HTML и этим пакетом не пользуются.
package response

// Response стандартная структура JSON-ответа.
// Status — "OK" или "Error", Error — текст ошибки при неуспехе,
// Data — данные при успехе.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

const (
	// StatusOK значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// OKWithData возвращает успешный Response с переданными данными.
func OKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

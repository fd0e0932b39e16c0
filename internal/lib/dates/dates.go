// Package dates форматирует временные метки удалённого API для отображения
// на страницах. API отдаёт даты строками в формате RFC 3339; пустые и
// нераспознанные значения возвращаются как есть, чтобы страница не падала
// из-за одного кривого поля.
package dates

import "time"

// displayLayout — формат отображения дат на страницах.
const displayLayout = "02.01.2006 15:04"

// dateOnlyLayout — формат отображения дат без времени (дата рождения).
const dateOnlyLayout = "02.01.2006"

// Format преобразует строку RFC 3339 в человеко-читаемый вид с временем.
func Format(value string) string {
	return format(value, displayLayout)
}

// FormatDate преобразует строку RFC 3339 в человеко-читаемую дату без времени.
func FormatDate(value string) string {
	return format(value, dateOnlyLayout)
}

func format(value, layout string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format(layout)
}

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// LocalDateTimeLayout задаёт формат, в котором время заявки отдаётся клиенту.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// Допустимые ISO-8601 форматы без часового пояса, от самого полного.
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ErrInvalidLocalDateTime возвращается, если строку не удалось разобрать как дату-время.
var ErrInvalidLocalDateTime = errors.New("invalid ISO-8601 date-time")

// LocalDateTime хранит дату и время без часового пояса.
// Внутри хранится time.Time в локации UTC, чтобы одинаковые показания
// часов сравнивались как равные после записи в БД и чтения обратно.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime отбрасывает часовой пояс t и сохраняет только показания часов.
// Точность обрезается до микросекунд: столько хранит колонка TIMESTAMP.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000*1000,
		time.UTC,
	)}
}

// ParseLocalDateTime разбирает ISO-8601 дату-время: YYYY-MM-DDTHH:MM[:SS[.fff]].
// Суффикс часового пояса (Z, +03:00) допускается и отбрасывается.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LocalDateTime{}, fmt.Errorf("%w: empty value", ErrInvalidLocalDateTime)
	}

	for _, layout := range localDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewLocalDateTime(t), nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewLocalDateTime(t), nil
	}

	return LocalDateTime{}, fmt.Errorf("%w: %q", ErrInvalidLocalDateTime, s)
}

// String форматирует значение; доли секунды выводятся, только если они есть.
func (l LocalDateTime) String() string {
	if l.Nanosecond() != 0 {
		return l.Format("2006-01-02T15:04:05.999999999")
	}
	return l.Format(LocalDateTimeLayout)
}

// Equal сравнивает показания часов.
func (l LocalDateTime) Equal(other LocalDateTime) bool {
	return l.Time.Equal(other.Time)
}

// MarshalJSON реализует json.Marshaler. Нулевое значение (0001-01-01T00:00:00)
// пишется как обычная дата.
func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON реализует json.Unmarshaler. null оставляет нулевое значение.
func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*l = LocalDateTime{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: expected string", ErrInvalidLocalDateTime)
	}

	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

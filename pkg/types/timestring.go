package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается, когда строка времени не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString время дня в формате "HH:MM" (без даты и секунд)
// Используется для границ расписаний и слотов
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" и валидирует её
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if _, err := ts.minutes(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// minutes переводит время в минуты с начала суток
func (t TimeString) minutes() (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return h*60 + m, nil
}

// IsBefore возвращает true, если t строго раньше other
// Невалидные значения считаются равными (сравнение не паникует)
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// AddMinutes возвращает время через delta минут (в пределах суток)
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	m += delta
	if m < 0 || m >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(t), delta)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// At совмещает время дня с датой (тайзона даты сохраняется)
func (t TimeString) At(date time.Time) time.Time {
	m, err := t.minutes()
	if err != nil {
		m = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location())
}

// MinutesUntil возвращает количество минут от t до other (может быть отрицательным)
func (t TimeString) MinutesUntil(other TimeString) int {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return 0
	}
	return b - a
}

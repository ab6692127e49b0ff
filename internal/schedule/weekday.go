package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dayNames сопоставляет нормализованные названия дней недели с time.Weekday.
// Принимаем английские и португальские названия (язык исходных данных школы)
var dayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"domingo":   time.Sunday,
	"segunda":   time.Monday,
	"terca":     time.Tuesday,
	"quarta":    time.Wednesday,
	"quinta":    time.Thursday,
	"sexta":     time.Friday,
	"sabado":    time.Saturday,
}

// accentFold убирает диакритику из португальских названий
var accentFold = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u",
	"ç", "c",
)

// ParseWeekdayName разбирает название дня недели без учёта регистра и диакритики.
// Суффикс "-feira" у португальских названий отбрасывается
func ParseWeekdayName(name string) (time.Weekday, error) {
	key := accentFold.Replace(strings.ToLower(strings.TrimSpace(name)))
	key = strings.TrimSuffix(key, "-feira")
	key = strings.TrimSuffix(key, " feira")

	weekday, ok := dayNames[key]
	if !ok {
		return 0, fmt.Errorf("invalid weekday %q", name)
	}
	return weekday, nil
}

// ParseWeekdayNumber проверяет числовой код дня недели (0 = Sunday, 6 = Saturday)
func ParseWeekdayNumber(n int) (time.Weekday, error) {
	if n < 0 || n > 6 {
		return 0, fmt.Errorf("invalid weekday %d", n)
	}
	return time.Weekday(n), nil
}

// WeekdayValue — день недели, принятый с границы либо числом, либо названием.
// До вызова Resolve значение не провалидировано
type WeekdayValue struct {
	name   string
	number int
	isName bool
	isSet  bool
}

// WeekdayFromNumber создаёт числовое значение
func WeekdayFromNumber(n int) WeekdayValue {
	return WeekdayValue{number: n, isSet: true}
}

// WeekdayFromName создаёт строковое значение
func WeekdayFromName(name string) WeekdayValue {
	return WeekdayValue{name: name, isName: true, isSet: true}
}

// UnmarshalJSON принимает JSON-число или JSON-строку
func (w *WeekdayValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*w = WeekdayFromNumber(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = WeekdayFromName(s)
		return nil
	}

	return fmt.Errorf("invalid weekday %s", string(data))
}

// Resolve приводит значение к каноническому time.Weekday
func (w WeekdayValue) Resolve() (time.Weekday, error) {
	if !w.isSet {
		return 0, fmt.Errorf("weekday is required")
	}
	if w.isName {
		return ParseWeekdayName(w.name)
	}
	return ParseWeekdayNumber(w.number)
}

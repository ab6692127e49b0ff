package schedule

import "fmt"

// TimeOfDay — время начала занятия в пределах суток
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay разбирает время в формате "HH:MM"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("invalid start time %q: expected HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return TimeOfDay{}, fmt.Errorf("invalid start time %q: expected HH:MM", s)
		}
	}

	t := TimeOfDay{
		Hour:   int(s[0]-'0')*10 + int(s[1]-'0'),
		Minute: int(s[3]-'0')*10 + int(s[4]-'0'),
	}
	if t.Hour > 23 || t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid start time %q: expected HH:MM", s)
	}
	return t, nil
}

// Minutes возвращает количество минут с полуночи
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String форматирует время обратно в "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// FormatClock форматирует пару час/минута в "HH:MM"
func FormatClock(hour, minute int) string {
	return TimeOfDay{Hour: hour, Minute: minute}.String()
}

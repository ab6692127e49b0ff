package schedule

import "time"

// Expand возвращает все даты в диапазоне [rangeStart, rangeEnd], попадающие
// на указанный день недели, по возрастанию. Идём по дням до первого совпадения,
// дальше шагаем по неделям. Пустой результат — не ошибка
func Expand(weekday time.Weekday, rangeStart, rangeEnd time.Time) []time.Time {
	dates := []time.Time{}

	day := rangeStart
	for day.Weekday() != weekday {
		day = day.AddDate(0, 0, 1)
		if day.After(rangeEnd) {
			return dates
		}
	}

	for !day.After(rangeEnd) {
		dates = append(dates, day)
		day = day.AddDate(0, 0, 7)
	}

	return dates
}

// Overlaps сообщает, пересекаются ли полуинтервалы [aStart, aEnd) и [bStart, bEnd)
// в минутах с полуночи. Занятия впритык (aEnd == bStart) не пересекаются
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

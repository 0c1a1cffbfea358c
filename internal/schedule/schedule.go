package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange      = errors.New("invalid time range")
	ErrInvalidDuration   = errors.New("slot duration must be 15 or 30 minutes")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
)

// Ограничения политики генерации.
const (
	maxWindow    = 24 * time.Hour
	maxRuleSpan  = 3 // месяцев от window_start до until
	minSlotMin   = 15
	maxSlotMin   = 30
)

// Частота повторения правила.
type Frequency string

const (
	FreqOneTime Frequency = "one_time"
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
)

// ParseFrequency разбирает строковое представление частоты.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FreqOneTime, FreqDaily, FreqWeekly:
		return Frequency(s), nil
	default:
		return "", ErrInvalidRecurrence
	}
}

// TimeRange представляет временной интервал [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Rule — провалидированное правило генерации слотов.
// WindowStart/WindowEnd задают дневное окно первого дня;
// на последующие дни переносится только время суток.
type Rule struct {
	Freq            Frequency
	WindowStart     time.Time
	WindowEnd       time.Time
	SlotDurationMin int
	// Дни недели для weekly (0 = воскресенье … 6 = суббота).
	DaysOfWeek []int
	// Включительная дата последнего дня серии.
	Until time.Time
}

// Validate проверяет инварианты правила:
//   - окно непустое и не длиннее 24 часов;
//   - until не раньше начала и не дальше 3 месяцев от него;
//   - длительность слота 15 или 30 минут и помещается в окно;
//   - для weekly задан непустой набор корректных дней недели.
func (r Rule) Validate() error {
	if r.WindowStart.IsZero() || r.WindowEnd.IsZero() || r.Until.IsZero() {
		return ErrInvalidRange
	}
	if !r.WindowEnd.After(r.WindowStart) {
		return ErrInvalidRange
	}
	if r.WindowEnd.Sub(r.WindowStart) > maxWindow {
		return ErrInvalidRange
	}
	if r.Until.Before(r.WindowStart) {
		return ErrInvalidRange
	}
	if r.Until.After(r.WindowStart.AddDate(0, maxRuleSpan, 0)) {
		return ErrInvalidRange
	}

	if r.SlotDurationMin != minSlotMin && r.SlotDurationMin != maxSlotMin {
		return ErrInvalidDuration
	}

	switch r.Freq {
	case FreqOneTime, FreqDaily:
	case FreqWeekly:
		if len(r.DaysOfWeek) == 0 {
			return ErrInvalidRecurrence
		}
		for _, d := range r.DaysOfWeek {
			if d < 0 || d > 6 {
				return ErrInvalidRecurrence
			}
		}
	default:
		return ErrInvalidRecurrence
	}

	// Окно должно вмещать хотя бы один полный слот.
	if r.SlotsPerDay() <= 0 {
		return ErrInvalidRange
	}

	return nil
}

// SlotsPerDay — количество полных слотов, помещающихся в дневное окно.
// "Хвост" окна, не вмещающий целый слот, отбрасывается.
func (r Rule) SlotsPerDay() int {
	windowMin := int(r.WindowEnd.Sub(r.WindowStart) / time.Minute)
	if r.SlotDurationMin <= 0 {
		return 0
	}
	return windowMin / r.SlotDurationMin
}

// Expand разворачивает правило в хронологическую последовательность слотов.
// Функция чистая и детерминированная: одинаковый вход даёт одинаковый выход.
func (r Rule) Expand() ([]TimeRange, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	perDay := r.SlotsPerDay()
	step := time.Duration(r.SlotDurationMin) * time.Minute

	day := dateOnly(r.WindowStart)
	lastDay := dateOnly(r.Until)

	var result []TimeRange
	for !day.After(lastDay) {
		if r.Freq == FreqWeekly && !containsWeekday(r.DaysOfWeek, int(day.Weekday())) {
			day = day.AddDate(0, 0, 1)
			continue
		}

		// Переносим время суток начала окна на текущий день.
		slotStart := time.Date(
			day.Year(), day.Month(), day.Day(),
			r.WindowStart.Hour(), r.WindowStart.Minute(),
			0, 0,
			r.WindowStart.Location(),
		)
		for i := 0; i < perDay; i++ {
			slotEnd := slotStart.Add(step)
			result = append(result, TimeRange{Start: slotStart, End: slotEnd})
			slotStart = slotEnd
		}

		// one_time ограничено первым днём независимо от until.
		if r.Freq == FreqOneTime {
			break
		}
		day = day.AddDate(0, 0, 1)
	}

	return result, nil
}

func containsWeekday(list []int, w int) bool {
	for _, d := range list {
		if d == w {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

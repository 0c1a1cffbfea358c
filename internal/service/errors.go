package service

import "errors"

// Ошибки разбора параметров запросов чтения.
var (
	ErrInvalidDate      = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

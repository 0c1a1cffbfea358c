package repository

import "errors"

// Типизированные исходы персистентного слоя; сервисы и транспорт
// проверяют их через errors.Is.
var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorExists      = errors.New("doctor with this username or email already exists")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
)

package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// В том числе при недоступности коллабораторов: частичный результат
	// не возвращается, чтобы не завысить доступность
	ErrInternal = errors.New("usecase: internal error")
)

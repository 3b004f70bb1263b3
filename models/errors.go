package models

import "github.com/pkg/errors"

// Ошибки доменного уровня. Обработчики возвращают их (возможно обёрнутыми
// через errors.Wrap), контроллеры сопоставляют с HTTP статусами через errors.Is.
var (
	ErrNotFound      = errors.New("запись не найдена")
	ErrJobMismatch   = errors.New("кандидат не относится к этой вакансии")
	ErrInvalidStatus = errors.New("недопустимое значение статуса")
	ErrHasDependents = errors.New("невозможно удалить вакансию с кандидатами, сначала удалите всех кандидатов")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

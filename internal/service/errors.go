package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ValidationError — некорректные входные данные запроса.
// Прерывает запрос целиком до какой-либо работы с базой
type ValidationError struct {
	msg string
}

// NewValidationError создаёт ошибку валидации с форматированным сообщением
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NotFoundError — запрошенный предмет или группа не существует
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// InfrastructureError — хранилище недоступно целиком (нет соединения,
// отсутствует схема). Отличается от ошибки на отдельной дате: на неё
// нельзя ответить "часть дат не создалась"
type InfrastructureError struct {
	Err error
}

func (e *InfrastructureError) Error() string {
	return "storage unavailable: " + e.Err.Error()
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// Классы SQLSTATE, означающие что база не готова, а не что данные плохие:
// 08 — connection exception, 3D/3F — нет базы/схемы, 42 — нет таблицы/колонки,
// 53 — нехватка ресурсов, 57 — operator intervention, 58 — system error
var infrastructureSQLStates = map[string]bool{
	"08": true, "3D": true, "3F": true, "42": true,
	"53": true, "57": true, "58": true,
}

// storeFailure классифицирует ошибку хранилища: инфраструктурные проблемы
// оборачиваются в InfrastructureError, остальное возвращается как есть
func storeFailure(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) >= 2 && infrastructureSQLStates[pgErr.Code[:2]] {
			return &InfrastructureError{Err: err}
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return &InfrastructureError{Err: err}
	}

	return err
}

// isUniqueViolation проверяет нарушение уникального ограничения
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

package database

import "errors"

// Ошибки, по которым HTTP-слой выбирает код ответа. Несовпадение владельца
// намеренно сводится к ErrNotFound, чтобы не подтверждать существование
// чужих записей.
var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrEmailTaken         = errors.New("пользователь с таким email уже существует")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrWrongPassword      = errors.New("неверный пароль")
	ErrWeakPassword       = errors.New("пароль должен содержать не менее 6 символов")
	ErrInvalidTransaction = errors.New("некорректная транзакция")
)

// Package repository реализует хранение заявок на помощь в PostgreSQL.
package repository

import "errors"

// ErrHelpRequestNotFound возвращается, если заявки с таким id нет в БД.
var ErrHelpRequestNotFound = errors.New("help request not found")

package domain

import "errors"

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	// ErrNotFound - ожидаемый исход поиска по slug, не сбой.
	// REST-слой переводит его в 404.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidPagination - ошибка вызывающей стороны:
	// отрицательные offset/limit не исправляются молча.
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// ErrUnknownFacetKind - неизвестный тип фасета в операции по slug.
	ErrUnknownFacetKind = errors.New("unknown facet kind")
)

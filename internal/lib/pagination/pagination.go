// Package pagination реализует арифметику постраничного вывода и метаданные
// ответа для списочных эндпоинтов каталога.
//
// Calculate принимает номер страницы, размер страницы и общее количество записей,
// возвращая метаданные окна выборки или ErrInvalidPage, если страница выходит за
// пределы непустого результата.
package pagination

import "errors"

const (
	// DefaultLimit — размер страницы, если limit не передан или некорректен.
	DefaultLimit = 10
	// MaxLimit — верхняя граница размера страницы.
	MaxLimit = 100
)

// ErrInvalidPage возвращается, когда запрошенная страница больше общего числа
// страниц при непустом результате.
var ErrInvalidPage = errors.New("page is out of range")

// Meta содержит метаданные постраничного вывода, отдаваемые клиенту вместе
// со списком фильмов. NextPage и PrevPage равны null, когда соседней страницы нет.
type Meta struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalMovies   int  `json:"totalMovies"`
	MoviesPerPage int  `json:"moviesPerPage"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
	NextPage      *int `json:"nextPage"`
	PrevPage      *int `json:"prevPage"`
}

// Normalize приводит сырые значения page и limit к допустимым:
// page < 1 становится 1, limit вне 1..MaxLimit — DefaultLimit.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return page, limit
}

// Skip возвращает количество записей, которые нужно пропустить
// перед началом страницы.
func Skip(page, limit int) int {
	return (page - 1) * limit
}

// Calculate строит метаданные окна выборки.
//
// При total == 0 возвращает пустое окно без ошибки: totalPages равен нулю,
// соседних страниц нет. Если page больше числа страниц непустого результата,
// возвращается ErrInvalidPage.
func Calculate(page, limit, total int) (Meta, error) {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	if total > 0 && page > totalPages {
		return Meta{}, ErrInvalidPage
	}

	meta := Meta{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalMovies:   total,
		MoviesPerPage: limit,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}
	if meta.HasNextPage {
		next := page + 1
		meta.NextPage = &next
	}
	if meta.HasPrevPage {
		prev := page - 1
		meta.PrevPage = &prev
	}
	return meta, nil
}

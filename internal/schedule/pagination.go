package schedule

// Дефолты и потолок пагинации.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams описывает запрошенную страницу (нумерация с 1).
type PageParams struct {
	Page  int
	Limit int
}

// Normalize подставляет дефолты и ограничивает limit потолком.
func (p PageParams) Normalize() PageParams {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset — смещение от начала выборки для текущей страницы.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta — метаданные страницы в ответе API.
type PageMeta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	PerPage     int   `json:"perPage"`
	TotalPages  int   `json:"totalPages"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// NewPageMeta считает метаданные по общему количеству элементов.
func NewPageMeta(total int64, p PageParams) PageMeta {
	totalPages := int(total) / p.Limit
	if int(total)%p.Limit != 0 {
		totalPages++
	}

	return PageMeta{
		Total:       total,
		Page:        p.Page,
		PerPage:     p.Limit,
		TotalPages:  totalPages,
		HasPrevious: p.Page > 1,
		HasNext:     p.Page < totalPages,
	}
}

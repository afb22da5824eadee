package dto

// PageQuery is the common pagination query pair.
type PageQuery struct {
	Page  int `form:"page,default=1" json:"page"`
	Limit int `form:"limit,default=10" json:"limit"`
}

// Normalize clamps pagination to sane bounds.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// PageMeta mirrors the listing metadata of the API contract.
type PageMeta struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// NewPageMeta derives the metadata for one returned page.
func NewPageMeta(page, limit, returned int, total int64) PageMeta {
	skip := (page - 1) * limit
	return PageMeta{
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasNext: int64(skip+returned) < total,
		HasPrev: page > 1,
	}
}

package request

import (
	"rental-booking/internal/usecase/queries"
)

type ListOffersQuery struct {
	Category string `form:"category"`
	MaxPrice int64  `form:"maxPrice" binding:"gte=0"`
	Search   string `form:"q" binding:"max=100"`
	Sort     string `form:"sort" binding:"omitempty,oneof=price_asc price_desc title"`
	Page     int    `form:"page" binding:"gte=0,lte=10000"`
	PerPage  int    `form:"perPage" binding:"gte=0,lte=50"`
}

func (q ListOffersQuery) ToFilter() queries.Filter {
	return queries.Filter{
		Category: q.Category,
		MaxPrice: q.MaxPrice,
		Search:   q.Search,
		Sort:     q.Sort,
		Page:     q.Page,
		PerPage:  q.PerPage,
	}
}

type SpecialOffersQuery struct {
	Limit int `form:"limit" binding:"gte=0,lte=50"`
}

package queries

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"rental-booking/internal/domain/offer"
	"rental-booking/internal/pkg/errs"
)

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortTitle     = "title"

	DefaultPerPage = 9
	MaxPerPage     = 50
)

var ErrInvalidSort = errs.New("invalid sort option")

type Filter struct {
	Category string
	MaxPrice int64 // compared against the offer's lowest price; 0 disables
	Search   string
	Sort     string
	Page     int
	PerPage  int
}

type Page struct {
	Offers     []offer.Offer `json:"offers"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PerPage    int           `json:"perPage"`
	TotalPages int           `json:"totalPages"`
}

type CatalogQueries interface {
	List(ctx context.Context, f Filter) (Page, error)
	Get(ctx context.Context, id int) (*offer.Offer, error)
	Categories(ctx context.Context) []string
	Special(ctx context.Context, limit int) []offer.Offer
}

type catalogQueriesImpl struct {
	offers []offer.Offer
	byID   map[int]int
}

// NewCatalogQueries serves a catalog that never changes after boot.
func NewCatalogQueries(offers []offer.Offer) CatalogQueries {
	byID := make(map[int]int, len(offers))
	for i, o := range offers {
		byID[o.ID] = i
	}
	return &catalogQueriesImpl{offers: offers, byID: byID}
}

func (q *catalogQueriesImpl) List(_ context.Context, f Filter) (Page, error) {
	matched := make([]offer.Offer, 0, len(q.offers))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, o := range q.offers {
		if f.Category != "" && !strings.EqualFold(f.Category, "all") && !strings.EqualFold(o.Category, f.Category) {
			continue
		}
		if f.MaxPrice > 0 && o.LowestPrice() > f.MaxPrice {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(o.Title), search) {
			continue
		}
		matched = append(matched, o)
	}

	switch f.Sort {
	case "":
	case SortPriceAsc:
		slices.SortStableFunc(matched, func(a, b offer.Offer) int {
			return cmp.Compare(a.LowestPrice(), b.LowestPrice())
		})
	case SortPriceDesc:
		slices.SortStableFunc(matched, func(a, b offer.Offer) int {
			return cmp.Compare(b.LowestPrice(), a.LowestPrice())
		})
	case SortTitle:
		slices.SortStableFunc(matched, func(a, b offer.Offer) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	default:
		return Page{}, ErrInvalidSort
	}

	return paginate(matched, f.Page, f.PerPage), nil
}

func paginate(offers []offer.Offer, page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	perPage = min(perPage, MaxPerPage)
	page = max(page, 1)

	total := len(offers)
	totalPages := (total + perPage - 1) / perPage

	start := total
	if page <= totalPages {
		start = (page - 1) * perPage
	}
	end := min(start+perPage, total)

	return Page{
		Offers:     slices.Clone(offers[start:end]),
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

func (q *catalogQueriesImpl) Get(_ context.Context, id int) (*offer.Offer, error) {
	i, ok := q.byID[id]
	if !ok {
		return nil, errs.ErrOfferNotFound
	}
	o := q.offers[i]
	return &o, nil
}

// Categories lists distinct categories in catalog order.
func (q *catalogQueriesImpl) Categories(context.Context) []string {
	var out []string
	for _, o := range q.offers {
		if o.Category != "" && !slices.Contains(out, o.Category) {
			out = append(out, o.Category)
		}
	}
	return out
}

// Special feeds the home page carousel: offers tagged special, catalog order.
func (q *catalogQueriesImpl) Special(_ context.Context, limit int) []offer.Offer {
	out := []offer.Offer{}
	for _, o := range q.offers {
		if limit > 0 && len(out) == limit {
			break
		}
		if o.HasTag(offer.TagSpecial) {
			out = append(out, o)
		}
	}
	return out
}

package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"rental-booking/internal/domain/offer"
	"rental-booking/internal/pkg/errs"
)

// LoadFile reads the static offer catalog. Offers without a positive id or
// with a duplicate id make the whole file invalid.
func LoadFile(path string) ([]offer.Offer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read catalog %s", path)
	}
	return Parse(b)
}

func Parse(b []byte) ([]offer.Offer, error) {
	var offers []offer.Offer
	if err := json.Unmarshal(b, &offers); err != nil {
		return nil, errs.Wrap(err, "decode catalog")
	}

	seen := make(map[int]struct{}, len(offers))
	for i, o := range offers {
		if o.ID <= 0 {
			return nil, errs.New(fmt.Sprintf("catalog entry %d: id must be positive", i))
		}
		if _, dup := seen[o.ID]; dup {
			return nil, errs.New(fmt.Sprintf("catalog entry %d: duplicate id %d", i, o.ID))
		}
		seen[o.ID] = struct{}{}
	}
	return offers, nil
}

package offer

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const Currency = "CFA"

var ErrInvalidAmount = errors.New("invalid amount")

// MaxAmount is the largest price a catalog may carry.
const MaxAmount = 1_000_000_000_000

// Amount is a whole-unit price. Catalog files carry it either as a number or as
// a display string such as "75,000".
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.NewReplacer(",", "", " ", "", Currency, "").Replace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return ErrInvalidAmount
		}
		return a.set(v)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v, err := n.Int64()
	if err != nil {
		// 75000.0 is whole; 75000.5 is not
		f, ferr := n.Float64()
		if ferr != nil || f != math.Trunc(f) || math.Abs(f) > MaxAmount {
			return ErrInvalidAmount
		}
		v = int64(f)
	}
	return a.set(v)
}

func (a *Amount) set(v int64) error {
	if v < 0 || v > MaxAmount {
		return ErrInvalidAmount
	}
	*a = Amount(v)
	return nil
}

func (a Amount) Int64() int64 {
	return int64(a)
}

var printer = message.NewPrinter(language.English)

// FormatPrice renders an amount the way the site displays prices: "95,000 CFA".
func FormatPrice(amount int64) string {
	return printer.Sprintf("%d %s", amount, Currency)
}

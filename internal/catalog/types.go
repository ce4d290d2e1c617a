package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// RatingOnUpdate is written into every item submitted by an update.
// Business rule carried over from the catalog editors; awaiting product sign-off.
const RatingOnUpdate = "5.0"

var (
	// ErrEmptyCategory is returned when an id has to be derived from a category with no items.
	ErrEmptyCategory = errors.New("category has no items to derive an id from")
	// ErrMalformedID is returned when an item id does not follow the prefix+number layout.
	ErrMalformedID = errors.New("malformed item id")
)

// Category mirrors an entry of GET /menu.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is one catalog entry.
type Item struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Origin         string  `json:"origin"`
	Color          string  `json:"color"`
	Weight         float64 `json:"weight"`
	Bonus          string  `json:"bonus"`
	Price          float64 `json:"price"`
	Rating         string  `json:"rating"`
	Image          string  `json:"image"`
	IsTopOfTheWeek bool    `json:"isTopOfTheWeek"`
}

// Clone returns a copy of the category whose item slice can be mutated freely.
func (c Category) Clone() Category {
	dup := c
	dup.Items = CloneItems(c.Items)
	return dup
}

// CloneItems copies an item slice. A nil input yields nil.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// CloneCategories deep-copies a category list.
func CloneCategories(categories []Category) []Category {
	if len(categories) == 0 {
		return nil
	}
	dup := make([]Category, len(categories))
	for i, c := range categories {
		dup[i] = c.Clone()
	}
	return dup
}

// IndexOf returns the position of the item with the given id, or -1.
func (c Category) IndexOf(itemID string) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// CategoryIDOf returns the owning category id encoded in an item id: its
// first character.
func CategoryIDOf(itemID string) string {
	if itemID == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(itemID)
	return itemID[:size]
}

// NextItemID derives the id for an item appended after items.
//
// The sequence is taken from the last element in the current order, not the
// maximum across the list. Ids shaped like "O01" keep their two-character
// prefix ("O02"); shorter ids such as "A2" or "A2Gadget" fall back to the
// category character followed by the digits after it ("A3").
func NextItemID(items []Item) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCategory
	}
	last := items[len(items)-1].ID
	one := len(CategoryIDOf(last))
	if one == 0 || one == len(last) {
		return "", ErrMalformedID
	}
	_, second := utf8.DecodeRuneInString(last[one:])
	two := one + second
	if n := leadingDigits(last[two:]); n > 0 {
		return bump(last[:two], last[two:two+n])
	}
	if n := leadingDigits(last[one:]); n > 0 {
		return bump(last[:one], last[one:one+n])
	}
	return "", ErrMalformedID
}

// FirstItemID is the id given to the first item of an empty category.
func FirstItemID(categoryID string) string {
	return categoryID + "1"
}

func bump(prefix, digits string) (string, error) {
	seq, err := strconv.Atoi(digits)
	if err != nil {
		return "", ErrMalformedID
	}
	return prefix + strconv.Itoa(seq+1), nil
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// ParseNumber reads a user-entered numeric field. Anything unparsable, and
// NaN or infinity which JSON cannot carry, is 0.
func ParseNumber(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatNumber renders a numeric field for editing.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// User is the opaque payload returned by POST /login.
type User struct {
	Raw json.RawMessage
}

// Empty reports whether the payload is missing or falsy.
func (u User) Empty() bool {
	return isFalsy(u.Raw)
}

// Display returns a short label for the signed-in user.
func (u User) Display() string {
	var fields struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(u.Raw, &fields); err != nil {
		return "signed in"
	}
	if name := strings.TrimSpace(fields.Name); name != "" {
		return name
	}
	if email := strings.TrimSpace(fields.Email); email != "" {
		return email
	}
	return "signed in"
}

func isFalsy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "false", `""`, "0":
		return true
	}
	return false
}

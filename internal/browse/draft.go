package browse

import (
	"strings"

	"github.com/five82/orchid/internal/catalog"
)

// Draft is the user-entered text of the item form. Numeric fields stay as
// text until the item is built.
type Draft struct {
	Name         string
	Origin       string
	Color        string
	Weight       string
	Bonus        string
	Price        string
	Rating       string
	Image        string
	TopOfTheWeek bool
}

// DraftFromItem pre-fills a draft for editing an existing item.
func DraftFromItem(item catalog.Item) Draft {
	return Draft{
		Name:         item.Name,
		Origin:       item.Origin,
		Color:        item.Color,
		Weight:       catalog.FormatNumber(item.Weight),
		Bonus:        item.Bonus,
		Price:        catalog.FormatNumber(item.Price),
		Rating:       item.Rating,
		Image:        item.Image,
		TopOfTheWeek: item.IsTopOfTheWeek,
	}
}

// Item builds a catalog item with the given id. Unparsable numbers become 0.
func (d Draft) Item(id string) catalog.Item {
	return catalog.Item{
		ID:             id,
		Name:           strings.TrimSpace(d.Name),
		Origin:         strings.TrimSpace(d.Origin),
		Color:          strings.TrimSpace(d.Color),
		Weight:         catalog.ParseNumber(d.Weight),
		Bonus:          strings.TrimSpace(d.Bonus),
		Price:          catalog.ParseNumber(d.Price),
		Rating:         strings.TrimSpace(d.Rating),
		Image:          strings.TrimSpace(d.Image),
		IsTopOfTheWeek: d.TopOfTheWeek,
	}
}

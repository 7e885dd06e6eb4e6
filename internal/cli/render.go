package cli

import (
	"fmt"
	"io"

	"github.com/roach88/forkknife/internal/menu"
	"github.com/roach88/forkknife/internal/query"
)

// emptyListing is printed in place of an empty dish list.
const emptyListing = "No items yet."

// money renders a two-decimal amount with the currency prefix, if any.
func money(currency, amount string) string {
	if currency == "" {
		return amount
	}
	return currency + " " + amount
}

// renderDish writes one dish as a heading line and an indented description.
func renderDish(w io.Writer, d menu.Dish, currency string) {
	fmt.Fprintf(w, "[%s] %s (%s) %s\n", d.ID, d.Name, d.Course, money(currency, d.Price.Fixed()))
	if d.Description != "" {
		fmt.Fprintf(w, "    %s\n", d.Description)
	}
}

// renderDishes writes dishes in order, or the empty-listing message.
func renderDishes(w io.Writer, dishes []menu.Dish, currency string) {
	if len(dishes) == 0 {
		fmt.Fprintln(w, emptyListing)
		return
	}
	for _, d := range dishes {
		renderDish(w, d, currency)
	}
}

// renderStats writes the item count and one average line per course.
func renderStats(w io.Writer, stats query.Statistics, currency string) {
	fmt.Fprintf(w, "Total Items: %d\n", stats.TotalCount)
	for _, c := range menu.Courses() {
		fmt.Fprintf(w, "Avg %s Price: %s\n", c, money(currency, stats.Format(c)))
	}
}

// listingData is the JSON payload for commands that return dishes.
type listingData struct {
	Count  int         `json:"count"`
	Dishes []menu.Dish `json:"dishes"`
}

func newListingData(dishes []menu.Dish) listingData {
	return listingData{Count: len(dishes), Dishes: dishes}
}

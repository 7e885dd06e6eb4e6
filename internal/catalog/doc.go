// Package catalog loads seed menus.
//
// A catalogue is a YAML (.yaml, .yml) or CUE (.cue) document:
//
//	name: Chef Christoffel's Menu
//	currency: R
//	dishes:
//	  - name: Garlic Bread
//	    description: Toasted ciabatta
//	    course: Starters
//	    price: "85"
//
// Both formats are checked against the embedded schema.cue before any dish
// is validated, so a typo in a field name fails with a position rather than
// silently dropping data. Prices are kept as written; YAML numbers are read
// from their source text so 12.50 is not reparsed through a float.
package catalog

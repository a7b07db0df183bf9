// Package catalog provides the read-mostly menu side of the restaurant
// domain: categories and the menu items customers order from.
//
// Key business rules:
//   - Menu item titles are unique across the whole catalog
//   - Prices never drop below 2.00 and carry at most two decimal places
//   - Inventory counts are never negative
//   - Every menu item references an existing category; a referenced category
//     cannot be deleted (protect semantics, enforced at the persistence layer)
//   - Only managers mutate the catalog; everyone may read it
package catalog

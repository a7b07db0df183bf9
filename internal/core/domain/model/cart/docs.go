// Package cart provides the per-customer shopping cart aggregate.
//
// The package includes:
//   - Cart: the aggregate root owning an ordered collection of lines
//   - Item: a single line with a quantity and a snapshotted unit price
//
// Key business rules:
//   - One cart per user, created lazily and owned exclusively by that user
//   - Repeat adds of the same menu item accumulate quantity on one line and
//     keep the unit price from the first add
//   - price == unit_price × quantity holds for every line at all times
//   - Checkout and explicit clears remove all lines; the cart row persists
package cart

// Package services contains stateless domain services that coordinate
// multiple aggregates.
//
// CheckoutService implements the single cross-aggregate operation in the
// ordering domain: converting a cart into a placed order. It lives here
// rather than on either aggregate because it reads the cart, constructs
// an order and mutates the cart, and no single aggregate owns that flow.
package services

// Package user provides the identity side of the restaurant domain: the User
// aggregate and the typed Role enum.
//
// The package includes:
//   - User: an account with a unique username, a bcrypt password hash and
//     exactly one role
//   - Role: a typed enum {Customer, Manager, DeliveryCrew} matched
//     exhaustively wherever permissions branch
//
// Key business rules:
//   - Customer is the default; elevated roles are granted and revoked by
//     managers through group membership operations
//   - Revoking an elevated role reverts the account to Customer
//   - The domain only ever handles password hashes, never plaintext
package user

// Package store implements the record stores for community events and user
// accounts: validation, identity assignment, authentication, the current
// session, and role-gated queries. Collections are held in memory and
// written through a persistence.Adapter after every mutation.
//
// The stores assume a single execution context and are not safe for
// concurrent use.
package store

// Package common contains constants and small helpers shared by the
// console's client, storage and CLI layers.
package common

const (
	// TokenMetadataKey is the local-storage key holding the admin bearer token.
	TokenMetadataKey = "adminToken"

	// AuthorizationHeader carries "Bearer <token>" on authenticated requests.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader carries a per-call UUID for log correlation.
	RequestIDHeader = "X-Request-ID"

	// RoleAdmin is the only role allowed to hold a console session.
	RoleAdmin = "admin"

	// RoleUser is the regular platform role.
	RoleUser = "user"
)

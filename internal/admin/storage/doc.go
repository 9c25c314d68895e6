// Package storage is the console's durable local state: a small SQLite
// database (pure-Go modernc driver) holding key/value metadata, migrated
// with goose on open. The only value the console keeps there is the admin
// bearer token under common.TokenMetadataKey ("adminToken"), written on
// login and removed on logout or on any 401.
package storage

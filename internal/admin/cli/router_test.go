package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRoute(t *testing.T) {
	tests := []struct {
		path   string
		authed bool
		want   string
	}{
		{"/users", true, "/users"},
		{"/users/", true, "/users"},
		{"qr-codes", true, "/qr-codes"},
		{"/landing-pages", true, "/landing-pages"},
		{"/analytics", true, "/analytics"},
		{"/", true, "/"},
		{"", true, "/"},
		{"/nope", true, "/"},
		{"/login", true, "/"},

		{"/login", false, "/login"},
		{"/users", false, "/login"},
		{"/", false, "/login"},
		{"/nope", false, "/login"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveRoute(tt.path, tt.authed), "path=%q authed=%v", tt.path, tt.authed)
	}
}

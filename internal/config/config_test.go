package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDSN(t *testing.T) {
	lookup := func(env map[string]string) func(string) (string, bool) {
		return func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		}
	}

	t.Run("primary variable wins", func(t *testing.T) {
		dsn := ResolveDSN(lookup(map[string]string{
			"DB_CONNECTION_STRING": "postgres://primary",
			"DATABASE_URL":         "postgres://secondary",
		}))
		assert.Equal(t, "postgres://primary", dsn)
	})

	t.Run("falls through empty values", func(t *testing.T) {
		dsn := ResolveDSN(lookup(map[string]string{
			"DB_CONNECTION_STRING": "",
			"DATABASE_URL":         "postgres://secondary",
		}))
		assert.Equal(t, "postgres://secondary", dsn)
	})

	t.Run("last candidate", func(t *testing.T) {
		dsn := ResolveDSN(lookup(map[string]string{
			"POSTGRES_URL": "postgres://third",
		}))
		assert.Equal(t, "postgres://third", dsn)
	})

	t.Run("nothing set", func(t *testing.T) {
		assert.Equal(t, "", ResolveDSN(lookup(nil)))
	})
}

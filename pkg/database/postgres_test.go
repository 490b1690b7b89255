package database

import (
	"testing"

	"hotel-reservation/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestConnString(t *testing.T) {
	got := ConnString(utils.DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		Name:     "hotel",
		User:     "crs",
		Password: "p@ss",
	})
	assert.Equal(t, "postgres://crs:p%40ss@db:5433/hotel?sslmode=disable", got)
}

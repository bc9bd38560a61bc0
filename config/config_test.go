package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_KEY", "a=b")

	c := New()
	assert.Equal(t, "a=b", c["PORTFOLIO_TEST_KEY"])
}

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":             "4000",
		"BAD_INT":          "four",
		"EMPTY":            "",
		"DEBUG":            "true",
		"ACCEPTED_ORIGINS": " https://a.dev , ,https://b.dev",
		"COMMAS":           " , ",
	}

	assert.Equal(t, "4000", GetString(c, "PORT", "3000"))
	assert.Equal(t, "3000", GetString(c, "EMPTY", "3000"))
	assert.Equal(t, "x", GetString(nil, "PORT", "x"))

	assert.Equal(t, 4000, GetInt(c, "PORT", 1))
	assert.Equal(t, 1, GetInt(c, "BAD_INT", 1))
	assert.Equal(t, 1, GetInt(c, "MISSING", 1))

	assert.True(t, GetBool(c, "DEBUG", false))
	assert.False(t, GetBool(c, "PORT", false))

	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, GetList(c, "ACCEPTED_ORIGINS", nil))
	assert.Equal(t, []string{"*"}, GetList(c, "COMMAS", []string{"*"}))
	assert.Equal(t, []string{"*"}, GetList(c, "MISSING", []string{"*"}))
}

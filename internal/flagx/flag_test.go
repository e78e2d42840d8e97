package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", ":8080", "-x", "ignored", "-d", "dsn"}
	got := FilterArgs(args, []string{"-a", "-d"})
	assert.Equal(t, []string{"-a", ":8080", "-d", "dsn"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--addr=:8080", "--other=zzz", "-d=dsn"}
	got := FilterArgs(args, []string{"--addr", "-d"})
	assert.Equal(t, []string{"--addr=:8080", "-d=dsn"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// boolean-style flag directly followed by another flag keeps no value
	args := []string{"-v", "-a", ":9090"}
	got := FilterArgs(args, []string{"-v", "-a"})
	assert.Equal(t, []string{"-v", "-a", ":9090"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

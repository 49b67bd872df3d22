package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NivelConfigurado(t *testing.T) {
	l := New("production", "warn")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.WarnLevel, l.zl.GetLevel())
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	for _, level := range []string{"", "verbose", "loud"} {
		l := New("development", level)
		assert.Equal(t, zerolog.InfoLevel, l.zl.GetLevel(), "level=%q", level)
	}
}

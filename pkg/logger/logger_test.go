package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/pkg/logger"
)

func TestNew_EtiquetaDeServicio(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Service: "produccion-api", Env: "production", Level: "info"})
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	assert.Contains(t, buf.String(), `"service":"produccion-api"`)
	assert.Contains(t, buf.String(), `"message":"hola"`)
}

func TestNew_ServicioPorDefecto(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info"})
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("x")
	assert.Contains(t, buf.String(), `"service":"produccion-api"`)
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info"}).Component("seed")
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("x")
	require.Contains(t, buf.String(), `"component":"seed"`)
}

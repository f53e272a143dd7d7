package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vetclinic-pro/pkg/logger"
)

func TestNew_ProduccionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Env: "production", Level: "info", Writer: &buf})

	l.Info().Str("modulo", "facturacion").Msg("factura emitida")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "facturacion", event["modulo"])
	assert.Equal(t, "factura emitida", event["message"])
	assert.Contains(t, event, "time")
}

func TestNew_NivelMinimoFiltra(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Env: "production", Level: "warn", Writer: &buf})

	l.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("emitido")
	assert.Contains(t, buf.String(), `"emitido"`)
}

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Env: "production", Level: "verboso", Writer: &buf})

	l.Debug().Msg("descartado")
	assert.Zero(t, buf.Len())

	l.Info().Msg("emitido")
	assert.Contains(t, buf.String(), `"emitido"`)
}

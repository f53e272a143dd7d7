package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de Swagger hace os.Stat sobre swaggerSpecPath al registrarse
// y hace panic si el archivo no existe; el spec tiene que estar versionado
// para que el servidor arranque.
func TestSwaggerSpec_ExisteYEsValido(t *testing.T) {
	// el test corre en cmd/api; el proceso corre desde la raíz del repo
	path := filepath.Join("..", "..", swaggerSpecPath)

	raw, err := os.ReadFile(path)
	require.NoError(t, err, "el spec de Swagger debe estar versionado en el repo")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &spec))
	assert.Equal(t, "2.0", spec.Swagger)

	for _, route := range []string{
		"/api/invoices",
		"/api/invoices/{id}",
		"/api/invoices/{id}/status",
		"/api/invoices/{id}/receipt",
		"/api/invoices/{id}/pdf",
		"/api/owners",
		"/api/auth/login",
	} {
		assert.Contains(t, spec.Paths, route)
	}
}

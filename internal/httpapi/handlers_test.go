package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizbattle-backend/internal/content"
)

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQuestionsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	Questions(rec, httptest.NewRequest(http.MethodGet, "/api/questions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var qs []content.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &qs))
	require.NotEmpty(t, qs)
	for _, q := range qs {
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.Correct, 0)
		assert.Less(t, q.Correct, len(q.Options))
	}
}

func TestCharactersEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	Characters(rec, httptest.NewRequest(http.MethodGet, "/api/characters", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var cs []content.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cs))
	require.Len(t, cs, 3)
	for _, c := range cs {
		assert.NotEmpty(t, c.Name)
		assert.Positive(t, c.MaxHealth)
	}
}

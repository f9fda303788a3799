package validators

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjipark/tteokbang-backend/internal/production"
)

func TestParseQueryDay(t *testing.T) {
	r := httptest.NewRequest("GET", "/?date=2026-09-02", nil)
	day, err := ParseQueryDay(r, "date")
	require.NoError(t, err)
	assert.Equal(t, production.Day{Year: 2026, Month: 9, Dom: 2}, day)

	r = httptest.NewRequest("GET", "/?date=02-09-2026", nil)
	_, err = ParseQueryDay(r, "date")
	assert.Error(t, err)

	r = httptest.NewRequest("GET", "/", nil)
	_, err = ParseQueryDay(r, "date")
	assert.Error(t, err)
}

func TestParseQueryInitial(t *testing.T) {
	r := httptest.NewRequest("GET", "/?initial=%E3%84%B1", nil) // ㄱ
	initial, err := ParseQueryInitial(r, "initial")
	require.NoError(t, err)
	assert.Equal(t, 'ㄱ', initial)

	r = httptest.NewRequest("GET", "/?initial=ab", nil)
	_, err = ParseQueryInitial(r, "initial")
	assert.Error(t, err)
}

func TestParseQueryIDs(t *testing.T) {
	r := httptest.NewRequest("GET", "/?ids=1,2,30", nil)
	ids, err := ParseQueryIDs(r, "ids")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 30}, ids)

	r = httptest.NewRequest("GET", "/", nil)
	ids, err = ParseQueryIDs(r, "ids")
	require.NoError(t, err)
	assert.Nil(t, ids)

	r = httptest.NewRequest("GET", "/?ids=1,-2", nil)
	_, err = ParseQueryIDs(r, "ids")
	assert.Error(t, err)
}

func TestPathID(t *testing.T) {
	id, err := PathID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = PathID("zero")
	assert.Error(t, err)

	_, err = PathID("0")
	assert.Error(t, err)
}

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", d.String())

	_, err = ParseDate("10/01/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-45")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	var sale Sale
	payload := `{"customer_id":1,"product_id":1,"employee_id":1,"sale_date":"2024-01-10","quantity":2}`
	require.NoError(t, json.Unmarshal([]byte(payload), &sale))
	assert.Equal(t, "2024-01-10", sale.SaleDate.String())

	out, err := json.Marshal(sale)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"sale_date":"2024-01-10"`)
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-06-15", d.String())

	require.NoError(t, d.Scan("2022-12-01"))
	assert.Equal(t, "2022-12-01", d.String())

	assert.Error(t, d.Scan(42))
}

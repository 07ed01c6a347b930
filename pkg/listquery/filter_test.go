package listquery

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bio", "bio"},
		{"50%", `50\%`},
		{"a_b", `a\_b`},
		{`c:\tmp`, `c:\\tmp`},
		{`%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLike(tt.in), tt.in)
	}
}

func TestKindCoerce(t *testing.T) {
	v, err := Integer.Coerce("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = Integer.Coerce("abc")
	assert.Error(t, err)

	for raw, want := range map[string]bool{"true": true, "TRUE": true, "1": true, "false": false, "0": false} {
		v, err := Boolean.Coerce(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}

	_, err = Boolean.Coerce("maybe")
	assert.Error(t, err)

	v, err = Date.Coerce("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), v)

	_, err = Date.Coerce("01/06/2024")
	assert.Error(t, err)

	status := OneOf("ACTIVE", "INACTIVE")
	v, err = status.Coerce("ACTIVE")
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", v)

	_, err = status.Coerce("active")
	assert.Error(t, err)

	level := IntBetween(1, 10)
	_, err = level.Coerce("11")
	assert.Error(t, err)
	v, err = level.Coerce("10")
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)
}

func TestFilterPredicate(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		params   Params
		wantOK   bool
		wantSQL  string
		wantArgs []any
	}{
		{
			name:   "equal absent",
			filter: Equal("status", "s.status", Text),
			params: Params{},
		},
		{
			name:   "equal empty string",
			filter: Equal("status", "s.status", Text),
			params: Params{"status": "  "},
		},
		{
			name:     "equal bool false still applies",
			filter:   Equal("isFree", "s.is_free", Boolean),
			params:   Params{"isFree": "false"},
			wantOK:   true,
			wantSQL:  "s.is_free = ?",
			wantArgs: []any{false},
		},
		{
			name:     "like single column",
			filter:   Like("search", "s.title"),
			params:   Params{"search": "10%"},
			wantOK:   true,
			wantSQL:  "s.title ILIKE ?",
			wantArgs: []any{`%10\%%`},
		},
		{
			name:     "like several columns",
			filter:   Like("search", "s.title", "s.code"),
			params:   Params{"search": "bio"},
			wantOK:   true,
			wantSQL:  "(s.title ILIKE ? OR s.code ILIKE ?)",
			wantArgs: []any{"%bio%", "%bio%"},
		},
		{
			name:     "between both bounds",
			filter:   Between("start_date", "end_date", "s.sale_date", Date),
			params:   Params{"start_date": "2024-01-01", "end_date": "2024-01-31"},
			wantOK:   true,
			wantSQL:  "s.sale_date BETWEEN ? AND ?",
			wantArgs: []any{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "between low only",
			filter:   Between("start_date", "end_date", "s.sale_date", Date),
			params:   Params{"start_date": "2024-01-01"},
			wantOK:   true,
			wantSQL:  "s.sale_date >= ?",
			wantArgs: []any{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "between high only",
			filter:   Between("start_date", "end_date", "s.sale_date", Date),
			params:   Params{"end_date": "2024-01-31"},
			wantOK:   true,
			wantSQL:  "s.sale_date <= ?",
			wantArgs: []any{time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "whole day range includes the end date",
			filter:   Between("startDate", "endDate", "e.enrolled_at", Day),
			params:   Params{"startDate": "2024-03-01", "endDate": "2024-03-31"},
			wantOK:   true,
			wantSQL:  "(e.enrolled_at >= ? AND e.enrolled_at < ?)",
			wantArgs: []any{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "whole day high only",
			filter:   Between("startDate", "endDate", "e.enrolled_at", Day),
			params:   Params{"endDate": "2024-12-31"},
			wantOK:   true,
			wantSQL:  "e.enrolled_at < ?",
			wantArgs: []any{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "whole day equal",
			filter:   Equal("on", "e.enrolled_at", Day),
			params:   Params{"on": "2024-02-29"},
			wantOK:   true,
			wantSQL:  "(e.enrolled_at >= ? AND e.enrolled_at < ?)",
			wantArgs: []any{time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:     "in list",
			filter:   In("status", "s.status", OneOf("ACTIVE", "DRAFT", "INACTIVE")),
			params:   Params{"status": "ACTIVE, DRAFT,"},
			wantOK:   true,
			wantSQL:  "s.status IN (?,?)",
			wantArgs: []any{"ACTIVE", "DRAFT"},
		},
		{
			name:     "at least",
			filter:   AtLeast("minCredits", "s.credits", Integer),
			params:   Params{"minCredits": "3"},
			wantOK:   true,
			wantSQL:  "s.credits >= ?",
			wantArgs: []any{int64(3)},
		},
		{
			name:     "at most",
			filter:   AtMost("maxCredits", "s.credits", Integer),
			params:   Params{"maxCredits": "6"},
			wantOK:   true,
			wantSQL:  "s.credits <= ?",
			wantArgs: []any{int64(6)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, ok, err := tt.filter.predicate(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, pred)
				return
			}

			sql, args, err := pred.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterPredicateErrors(t *testing.T) {
	_, _, err := Equal("branch_code", "s.branch_code", Text).Require().predicate(Params{})
	require.Error(t, err)
	var pe *ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "branch_code", pe.Param)
	assert.Equal(t, "branch_code is required", err.Error())

	_, _, err = In("status", "s.status", Text).Require().predicate(Params{"status": " , ,"})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "status", pe.Param)

	_, _, err = Between("startDate", "endDate", "e.enrolled_at", Day).Require().predicate(Params{})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "startDate", pe.Param)

	pred, ok, err := Between("startDate", "endDate", "e.enrolled_at", Day).Require().predicate(Params{"endDate": "2024-01-31"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, pred)

	_, _, err = Equal("majorId", "s.major_id", Integer).predicate(Params{"majorId": "three"})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "majorId", pe.Param)

	_, _, err = Between("start_date", "end_date", "s.sale_date", Date).predicate(Params{"start_date": "2024-01-01", "end_date": "soon"})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "end_date", pe.Param)
}

func TestParamsFromValues(t *testing.T) {
	values := url.Values{
		"status": {"ACTIVE", "DRAFT"},
		"search": {"intro"},
		"blank":  {""},
	}

	params := ParamsFromValues(values)
	assert.Equal(t, "ACTIVE,DRAFT", params.Get("status"))
	assert.Equal(t, "intro", params.Get("search"))
	assert.Equal(t, "", params.Get("blank"))
	assert.Equal(t, "", params.Get("missing"))

	var nilParams Params
	assert.Equal(t, "", nilParams.Get("status"))
}

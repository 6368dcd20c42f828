package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckKeys(t *testing.T) {
	assert.True(t, CheckKeys(map[string]string{"isbn": "x", "rating": "3"}))
	assert.True(t, CheckKeys(map[string]string{"javascript": "true", "titel": "a"}))
	assert.True(t, CheckKeys(map[string]string{}))
	assert.False(t, CheckKeys(map[string]string{"isbn": "x", "farbe": "rot"}))
	assert.False(t, CheckKeys(map[string]string{"ISBN": "x"}))
}

func TestCheckEnums(t *testing.T) {
	assert.True(t, CheckEnums(map[string]string{}))
	assert.True(t, CheckEnums(map[string]string{"art": "EPUB"}))
	assert.True(t, CheckEnums(map[string]string{"art": "PAPERBACK"}))
	assert.False(t, CheckEnums(map[string]string{"art": "AUDIO"}))
	assert.False(t, CheckEnums(map[string]string{"art": "epub"}))
}

func TestBuildWhereTitelSubstring(t *testing.T) {
	where, err := BuildWhere(map[string]string{"titel": "Alp"})
	require.NoError(t, err)
	assert.True(t, where.JoinTitel)
	require.Len(t, where.Conds, 1)
	assert.Equal(t, "LOWER(titel.titel_titel) LIKE ?", where.Conds[0].Query)
	assert.Equal(t, []any{"%alp%"}, where.Conds[0].Args)
}

func TestBuildWhereBounds(t *testing.T) {
	where, err := BuildWhere(map[string]string{
		"rating": "3",
		"preis":  "25.5",
		"datum":  "2022-02-01",
	})
	require.NoError(t, err)
	assert.False(t, where.JoinTitel)
	require.Len(t, where.Conds, 3)

	queries := make([]string, 0, len(where.Conds))
	for _, cond := range where.Conds {
		queries = append(queries, cond.Query)
	}
	assert.ElementsMatch(t, []string{
		"buch_rating >= ?",
		"buch_preis <= ?",
		"buch_datum >= ?",
	}, queries)
}

func TestBuildWhereLieferbar(t *testing.T) {
	where, err := BuildWhere(map[string]string{"lieferbar": "true"})
	require.NoError(t, err)
	require.Len(t, where.Conds, 1)
	assert.Equal(t, []any{true}, where.Conds[0].Args)

	where, err = BuildWhere(map[string]string{"lieferbar": "FALSE"})
	require.NoError(t, err)
	require.Len(t, where.Conds, 1)
	assert.Equal(t, []any{false}, where.Conds[0].Args)
}

func TestBuildWhereInvalidValuesReject(t *testing.T) {
	// an unparsable value rejects the whole search, it is never dropped
	for param, value := range map[string]string{
		"rating":    "viele",
		"preis":     "teuer",
		"datum":     "01.02.2022",
		"lieferbar": "vielleicht",
	} {
		where, err := BuildWhere(map[string]string{param: value})
		assert.Nil(t, where, "param %s", param)
		var invalid *InvalidSearchError
		assert.ErrorAs(t, err, &invalid, "param %s", param)
		assert.Equal(t, param, invalid.Param)
	}
}

func TestBuildWhereSchlagwortFlags(t *testing.T) {
	where, err := BuildWhere(map[string]string{"javascript": "true"})
	require.NoError(t, err)
	require.Len(t, where.Conds, 1)
	assert.Equal(t, "buch_schlagwoerter @> ?", where.Conds[0].Query)

	// a flag that is not "true" contributes nothing
	where, err = BuildWhere(map[string]string{"javascript": "false", "python": "nein"})
	require.NoError(t, err)
	assert.Empty(t, where.Conds)
}

func TestBuildSchlagwoerter(t *testing.T) {
	assert.Empty(t, buildSchlagwoerter(map[string]string{}))
	assert.Equal(t, []string{"PYTHON"},
		buildSchlagwoerter(map[string]string{"python": "True"}))
	assert.ElementsMatch(t, []string{"JAVASCRIPT", "TYPESCRIPT"},
		buildSchlagwoerter(map[string]string{
			"javascript": "true",
			"typescript": "true",
			"java":       "false",
		}))
}

func TestBuildWhereAcceptedWithoutClause(t *testing.T) {
	// rabatt and schlagwoerter are valid names but never filter
	where, err := BuildWhere(map[string]string{"rabatt": "0.1", "schlagwoerter": "JAVA"})
	require.NoError(t, err)
	assert.Empty(t, where.Conds)
}

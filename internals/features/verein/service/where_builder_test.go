package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckKeys(t *testing.T) {
	assert.True(t, CheckKeys(map[string]string{"name": "fc", "stadt": "wien"}))
	assert.True(t, CheckKeys(map[string]string{}))
	assert.False(t, CheckKeys(map[string]string{"name": "fc", "liga": "1"}))
	assert.False(t, CheckKeys(map[string]string{"Name": "fc"}))
}

func TestBuildWhereSubstrings(t *testing.T) {
	where, err := BuildWhere(map[string]string{"name": "Alp"})
	require.NoError(t, err)
	assert.False(t, where.JoinStadion)
	require.Len(t, where.Conds, 1)
	assert.Equal(t, "LOWER(verein_name) LIKE ?", where.Conds[0].Query)
	assert.Equal(t, []any{"%alp%"}, where.Conds[0].Args)

	where, err = BuildWhere(map[string]string{"telefonnummer": "2345"})
	require.NoError(t, err)
	require.Len(t, where.Conds, 1)
	assert.Equal(t, "LOWER(verein_telefonnummer) LIKE ?", where.Conds[0].Query)
}

func TestBuildWhereStadionJoin(t *testing.T) {
	// stadt and kapazitaet live on the stadion table and force the join
	where, err := BuildWhere(map[string]string{"stadt": "Wien"})
	require.NoError(t, err)
	assert.True(t, where.JoinStadion)
	require.Len(t, where.Conds, 1)
	assert.Equal(t, "LOWER(stadien.stadion_stadt) LIKE ?", where.Conds[0].Query)

	where, err = BuildWhere(map[string]string{"kapazitaet": "20000"})
	require.NoError(t, err)
	assert.True(t, where.JoinStadion)
	require.Len(t, where.Conds, 1)
	assert.Equal(t, "stadien.stadion_kapazitaet >= ?", where.Conds[0].Query)
	assert.Equal(t, []any{20000}, where.Conds[0].Args)
}

func TestBuildWhereBounds(t *testing.T) {
	where, err := BuildWhere(map[string]string{
		"mitgliederanzahl": "1000",
		"gruendungsdatum":  "1950-01-01",
	})
	require.NoError(t, err)
	require.Len(t, where.Conds, 2)

	queries := make([]string, 0, len(where.Conds))
	for _, cond := range where.Conds {
		queries = append(queries, cond.Query)
	}
	assert.ElementsMatch(t, []string{
		"verein_mitgliederanzahl >= ?",
		"verein_gruendungsdatum >= ?",
	}, queries)
}

func TestBuildWhereInvalidValuesReject(t *testing.T) {
	// an unparsable value rejects the whole search, it is never dropped
	for param, value := range map[string]string{
		"kapazitaet":       "gross",
		"mitgliederanzahl": "viele",
		"gruendungsdatum":  "13.05.1909",
	} {
		where, err := BuildWhere(map[string]string{param: value})
		assert.Nil(t, where, "param %s", param)
		var invalid *InvalidSearchError
		assert.ErrorAs(t, err, &invalid, "param %s", param)
		assert.Equal(t, param, invalid.Param)
	}
}

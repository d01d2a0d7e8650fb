package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelectTableObjects(t *testing.T) {
	tests := []struct {
		name           string
		tableID        int
		includeDeleted bool
		checkQuery     func(t *testing.T, query string, args []any)
	}{
		{
			name:           "all tables, deleted excluded",
			tableID:        0,
			includeDeleted: false,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "from table_objects")
				require.Contains(t, q, "upload_status")
				require.Contains(t, q, "order by id")
				assert.NotContains(t, q, "table_id =")

				// Exactly one argument: the excluded Deleted status.
				require.Len(t, args, 1)
				assert.Equal(t, int(deletedStatus), args[0])
			},
		},
		{
			name:           "single table, deleted included",
			tableID:        7,
			includeDeleted: true,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "table_id")
				assert.NotContains(t, q, "upload_status <>")

				require.Len(t, args, 1)
				assert.Equal(t, 7, args[0])
			},
		},
		{
			name:           "single table, deleted excluded",
			tableID:        3,
			includeDeleted: false,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 2)
				assert.Equal(t, 3, args[0])
				assert.Equal(t, int(deletedStatus), args[1])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectTableObjects(tt.tableID, tt.includeDeleted)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildDeleteProperties(t *testing.T) {
	t.Run("names restrict the delete", func(t *testing.T) {
		query, args, err := buildDeleteProperties(12, []string{"a", "b", "c"})
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "delete from properties")
		require.Contains(t, q, "table_object_id")
		require.Contains(t, q, "name in")

		// table_object_id + three names.
		require.Len(t, args, 4)
		assert.Equal(t, int64(12), args[0])
		assert.Equal(t, "a", args[1])
		assert.Equal(t, "c", args[3])
	})

	t.Run("no names deletes all rows of the record", func(t *testing.T) {
		query, args, err := buildDeleteProperties(12, nil)
		require.NoError(t, err)

		assert.NotContains(t, strings.ToLower(query), "name")
		require.Len(t, args, 1)
	})
}

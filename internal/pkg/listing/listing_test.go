package listing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

func TestIterator_Next(t *testing.T) {
	it := New([]string{"a", "b", "c"})

	var got []string
	for {
		item, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		require.NoError(t, err)
		got = append(got, item)
	}

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestIterator_Empty(t *testing.T) {
	_, err := New([]int{}).Next()
	assert.ErrorIs(t, err, iterator.Done)
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	t.Run("walks all pages", func(t *testing.T) {
		var all []int
		token := ""
		pages := 0
		for {
			page, next, err := Page(items, 5, token)
			require.NoError(t, err)
			all = append(all, page...)
			pages++
			if next == "" {
				break
			}
			token = next
		}

		assert.Equal(t, items, all)
		assert.Equal(t, 3, pages)
	})

	t.Run("exact multiple ends with empty token", func(t *testing.T) {
		page, next, err := Page(items[:10], 5, EncodeToken(5))
		require.NoError(t, err)
		assert.Equal(t, []int{6, 7, 8, 9, 10}, page)
		assert.Empty(t, next)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, _, err := Page(items, 5, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidPageToken)

		_, _, err = Page(items, 5, EncodeToken(99))
		assert.ErrorIs(t, err, ErrInvalidPageToken)
	})

	t.Run("non-positive page size", func(t *testing.T) {
		_, _, err := Page(items, 0, "")
		assert.Error(t, err)
	})
}

func TestTokens(t *testing.T) {
	offset, err := DecodeToken(EncodeToken(15))
	require.NoError(t, err)
	assert.Equal(t, 15, offset)

	offset, err = DecodeToken("")
	require.NoError(t, err)
	assert.Zero(t, offset)
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 5, ClampPageSize(0, 5, 50))
	assert.Equal(t, 5, ClampPageSize(-1, 5, 50))
	assert.Equal(t, 20, ClampPageSize(20, 5, 50))
	assert.Equal(t, 50, ClampPageSize(500, 5, 50))
}

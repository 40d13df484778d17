package list_courses

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/pkg/listing"
	"github.com/light-bringer/lingua-booking/internal/testutil"
)

func catalogOf(n int) *testutil.FakeCatalog {
	courses := make([]*domain.Course, 0, n)
	for i := 1; i <= n; i++ {
		c := testutil.Course(int64(i), fmt.Sprintf("English %d", i))
		if i%2 == 0 {
			c.Name = fmt.Sprintf("German %d", i)
			c.Level = "Beginner"
		}
		courses = append(courses, c)
	}
	return testutil.NewFakeCatalog(courses, nil)
}

func TestQuery_Execute_Pagination(t *testing.T) {
	q := NewQuery(catalogOf(12), 5)
	ctx := context.Background()

	first, err := q.Execute(ctx, &Request{})
	require.NoError(t, err)
	assert.Len(t, first.Courses, 5)
	assert.Equal(t, 12, first.TotalCount)
	require.NotEmpty(t, first.NextPageToken)

	second, err := q.Execute(ctx, &Request{PageToken: first.NextPageToken})
	require.NoError(t, err)
	assert.Equal(t, int64(6), second.Courses[0].ID)

	third, err := q.Execute(ctx, &Request{PageToken: second.NextPageToken})
	require.NoError(t, err)
	assert.Len(t, third.Courses, 2)
	assert.Empty(t, third.NextPageToken)
}

func TestQuery_Execute_Search(t *testing.T) {
	q := NewQuery(catalogOf(12), 5)

	t.Run("by name, ignoring case", func(t *testing.T) {
		res, err := q.Execute(context.Background(), &Request{Search: "GERMAN", PageSize: 50})
		require.NoError(t, err)
		assert.Equal(t, 6, res.TotalCount)
		for _, c := range res.Courses {
			assert.Contains(t, c.Name, "German")
		}
	})

	t.Run("by level", func(t *testing.T) {
		res, err := q.Execute(context.Background(), &Request{Search: "intermediate", PageSize: 50})
		require.NoError(t, err)
		assert.Equal(t, 6, res.TotalCount)
	})

	t.Run("no match", func(t *testing.T) {
		res, err := q.Execute(context.Background(), &Request{Search: "klingon"})
		require.NoError(t, err)
		assert.Empty(t, res.Courses)
		assert.Empty(t, res.NextPageToken)
	})
}

func TestQuery_Execute_Errors(t *testing.T) {
	t.Run("bad token", func(t *testing.T) {
		_, err := NewQuery(catalogOf(3), 5).Execute(context.Background(), &Request{PageToken: "???"})
		assert.ErrorIs(t, err, listing.ErrInvalidPageToken)
	})

	t.Run("gateway failure", func(t *testing.T) {
		catalog := catalogOf(3)
		catalog.Err = errors.New("down")
		_, err := NewQuery(catalog, 5).Execute(context.Background(), &Request{})
		assert.Error(t, err)
	})
}

package list_tutors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/testutil"
)

func TestQuery_Execute(t *testing.T) {
	beginner := testutil.Tutor(2, "Oleg", "German", "French")
	beginner.LanguageLevel = "Beginner"

	catalog := testutil.NewFakeCatalog(nil, []*domain.Tutor{
		testutil.Tutor(1, "Irina", "English", "German"),
		beginner,
		testutil.Tutor(3, "Maria", "Spanish"),
	})
	q := NewQuery(catalog)
	ctx := context.Background()

	t.Run("no filters", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{})
		require.NoError(t, err)
		assert.Len(t, res.Tutors, 3)
		assert.Equal(t, []string{"English", "French", "German", "Spanish"}, res.Languages)
		assert.Equal(t, []string{"Advanced", "Beginner"}, res.Levels)
	})

	t.Run("by language", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{Language: "German"})
		require.NoError(t, err)
		require.Len(t, res.Tutors, 2)
		assert.Equal(t, "Irina", res.Tutors[0].Name)
		assert.Equal(t, "Oleg", res.Tutors[1].Name)
	})

	t.Run("by language and level", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{Language: "German", Level: "Beginner"})
		require.NoError(t, err)
		require.Len(t, res.Tutors, 1)
		assert.Equal(t, "Oleg", res.Tutors[0].Name)
	})
}

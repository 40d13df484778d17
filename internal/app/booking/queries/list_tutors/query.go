package list_tutors

import (
	"context"
	"sort"

	"github.com/light-bringer/lingua-booking/internal/app/booking/contracts"
	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

// Request contains the tutor filters. Empty fields match everything.
type Request struct {
	Language string
	Level    string
}

// Query handles the list tutors query use case.
type Query struct {
	catalog contracts.CatalogGateway
}

// NewQuery creates a new list tutors query.
func NewQuery(catalog contracts.CatalogGateway) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute retrieves the tutors teaching Language at Level.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.TutorListResult, error) {
	tutors, err := q.catalog.ListTutors(ctx)
	if err != nil {
		return nil, err
	}

	languages := make(map[string]struct{})
	levels := make(map[string]struct{})
	matched := make([]*domain.Tutor, 0, len(tutors))

	for _, t := range tutors {
		for _, l := range t.LanguagesOffered {
			languages[l] = struct{}{}
		}
		if t.LanguageLevel != "" {
			levels[t.LanguageLevel] = struct{}{}
		}

		if !t.Offers(req.Language) {
			continue
		}
		if req.Level != "" && t.LanguageLevel != req.Level {
			continue
		}
		matched = append(matched, t)
	}

	return &contracts.TutorListResult{
		Tutors:    matched,
		Languages: sortedKeys(languages),
		Levels:    sortedKeys(levels),
	}, nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

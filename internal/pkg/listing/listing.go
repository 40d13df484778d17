// Package listing pages through in-memory result sets with the
// google.golang.org/api/iterator conventions: Next returns iterator.Done at
// the end, and iterator.NewPager hands out opaque page tokens.
package listing

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/iterator"
)

const tokenPrefix = "offset:"

// ErrInvalidPageToken is returned for tokens this package did not issue.
var ErrInvalidPageToken = errors.New("invalid page token")

// Iterator walks a slice. It implements iterator.Pageable.
type Iterator[T any] struct {
	items    []T
	buf      []T
	pageInfo *iterator.PageInfo
	nextFunc func() error
}

// New creates an iterator over items. The slice is not copied.
func New[T any](items []T) *Iterator[T] {
	it := &Iterator[T]{items: items}
	it.pageInfo, it.nextFunc = iterator.NewPageInfo(
		it.fetch,
		func() int { return len(it.buf) },
		func() interface{} {
			b := it.buf
			it.buf = nil
			return b
		},
	)
	return it
}

// PageInfo supports pagination. See the google.golang.org/api/iterator package for details.
func (it *Iterator[T]) PageInfo() *iterator.PageInfo {
	return it.pageInfo
}

// Next returns the next item. Its second return value is iterator.Done if
// there are no more results.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if err := it.nextFunc(); err != nil {
		return zero, err
	}
	item := it.buf[0]
	it.buf = it.buf[1:]
	return item, nil
}

func (it *Iterator[T]) fetch(pageSize int, pageToken string) (string, error) {
	offset, err := DecodeToken(pageToken)
	if err != nil {
		return "", err
	}
	if offset > len(it.items) {
		return "", fmt.Errorf("%w: offset %d beyond %d items", ErrInvalidPageToken, offset, len(it.items))
	}

	end := len(it.items)
	if pageSize > 0 && offset+pageSize < end {
		end = offset + pageSize
	}
	it.buf = append(it.buf, it.items[offset:end]...)

	if end >= len(it.items) {
		return "", nil
	}
	return EncodeToken(end), nil
}

// Page returns one page of items starting at pageToken and the token of the
// next page ("" on the last page). pageSize must be positive.
func Page[T any](items []T, pageSize int, pageToken string) ([]T, string, error) {
	if pageSize <= 0 {
		return nil, "", fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	page := make([]T, 0, pageSize)
	next, err := iterator.NewPager(New(items), pageSize, pageToken).NextPage(&page)
	if err != nil {
		return nil, "", err
	}
	return page, next, nil
}

// ClampPageSize applies a default to non-positive sizes and caps large ones.
func ClampPageSize(size, def, max int) int {
	if size <= 0 {
		return def
	}
	if size > max {
		return max
	}
	return size
}

// EncodeToken turns an offset into an opaque page token.
func EncodeToken(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(tokenPrefix + strconv.Itoa(offset)))
}

// DecodeToken returns the offset a token points at. The empty token is offset 0.
func DecodeToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPageToken, err)
	}
	s, ok := strings.CutPrefix(string(raw), tokenPrefix)
	if !ok {
		return 0, ErrInvalidPageToken
	}
	offset, err := strconv.Atoi(s)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}
	return offset, nil
}

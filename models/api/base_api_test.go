package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagination(t *testing.T) {
	t.Run(`defaults`, func(t *testing.T) {
		page, pageSize := Pagination{}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 10, pageSize)
	})

	t.Run(`explicit values`, func(t *testing.T) {
		page, pageSize := Pagination{Page: 3, PageSize: 25}.GetPage()
		require.Equal(t, 3, page)
		require.Equal(t, 25, pageSize)
	})

	t.Run(`page size capped at 100`, func(t *testing.T) {
		_, pageSize := Pagination{PageSize: 500}.GetPage()
		require.Equal(t, 100, pageSize)
	})

	t.Run(`negative values fall back to defaults`, func(t *testing.T) {
		page, pageSize := Pagination{Page: -1, PageSize: -5}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 10, pageSize)
	})
}

func TestPagedData(t *testing.T) {
	t.Run(`partial last page counted`, func(t *testing.T) {
		data := NewPagedData([]string{}, 25, 1, 10)
		require.Equal(t, 3, data.TotalPages)
		require.Equal(t, int64(25), data.Total)
	})

	t.Run(`exact fit`, func(t *testing.T) {
		data := NewPagedData([]string{}, 30, 2, 10)
		require.Equal(t, 3, data.TotalPages)
	})

	t.Run(`empty list`, func(t *testing.T) {
		data := NewPagedData([]string{}, 0, 1, 10)
		require.Equal(t, 0, data.TotalPages)
	})
}

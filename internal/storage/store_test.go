package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/bookbin/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drivers(t *testing.T) map[storage.Driver]func(t *testing.T, dir string) storage.Store {
	t.Helper()
	return map[storage.Driver]func(t *testing.T, dir string) storage.Store{
		storage.DriverFile: func(t *testing.T, dir string) storage.Store {
			s, err := storage.Open(storage.DriverFile, dir)
			require.NoError(t, err)
			return s
		},
		storage.DriverBadger: func(t *testing.T, dir string) storage.Store {
			s, err := storage.Open(storage.DriverBadger, dir)
			require.NoError(t, err)
			return s
		},
		storage.DriverSQLite: func(t *testing.T, dir string) storage.Store {
			s, err := storage.Open(storage.DriverSQLite, filepath.Join(dir, "bookbin.db"))
			require.NoError(t, err)
			return s
		},
	}
}

func TestStore_Contract(t *testing.T) {
	for driver, open := range drivers(t) {
		t.Run(string(driver), func(t *testing.T) {
			ctx := context.Background()
			s := open(t, t.TempDir())
			defer s.Close()

			assert.Equal(t, driver, s.Driver())

			_, err := s.Get(ctx, "book_data")
			assert.ErrorIs(t, err, storage.ErrNotExist)

			require.NoError(t, s.Set(ctx, "book_data", []byte(`[1]`)))
			require.NoError(t, s.Set(ctx, "book_data", []byte(`[1,2]`)))

			got, err := s.Get(ctx, "book_data")
			require.NoError(t, err)
			assert.Equal(t, `[1,2]`, string(got))

			_, err = s.Get(ctx, "tag_data")
			assert.ErrorIs(t, err, storage.ErrNotExist, "keys are independent")
		})
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	for driver, open := range drivers(t) {
		t.Run(string(driver), func(t *testing.T) {
			ctx := context.Background()
			dir := t.TempDir()

			s := open(t, dir)
			require.NoError(t, s.Set(ctx, "cat_data", []byte(`[{"id":1,"name":"Classics"}]`)))
			require.NoError(t, s.Close())

			s = open(t, dir)
			defer s.Close()
			got, err := s.Get(ctx, "cat_data")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":1,"name":"Classics"}]`, string(got))
		})
	}
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemory()

	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'x'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestFile_LeavesNoTempFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := storage.NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set(ctx, "tag_data", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tag_data.json", entries[0].Name())
}

func TestFile_RejectsPathKeys(t *testing.T) {
	f, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, f.Set(context.Background(), "../escape", []byte("x")))
	_, err = f.Get(context.Background(), "a/b")
	assert.Error(t, err)
}

func TestFile_CanceledContext(t *testing.T) {
	f, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, f.Set(ctx, "k", []byte("x")), context.Canceled)
}

func TestBadger_InMemory(t *testing.T) {
	ctx := context.Background()
	b, err := storage.OpenBadger("")
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Set(ctx, "k", []byte("v")))
	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := storage.Open("floppy", t.TempDir())
	assert.Error(t, err)
}

func TestOpen_DefaultsToFile(t *testing.T) {
	s, err := storage.Open("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, storage.DriverFile, s.Driver())
}

func TestOpen_Memory(t *testing.T) {
	s, err := storage.Open(storage.DriverMemory, "")
	require.NoError(t, err)
	assert.Equal(t, storage.DriverMemory, s.Driver())
}

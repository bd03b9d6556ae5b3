package djb2

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	t.Run("reference values", func(t *testing.T) {
		for _, tc := range []struct {
			Key     string
			Buckets int
			Index   int
		}{
			{"Alice", 100, 7},
			{"Bob", 100, 32},
			{"alice", 100, 79},
			{"Charlie", 100, 65},
			{"555", 100, 16},
			{"", 100, 81},
			{"hello", 7, 1},
			{"world", 7, 6},
		} {
			require.Equal(t, tc.Index, Hash(tc.Key, tc.Buckets), tc.Key)
		}
	})

	t.Run("deterministic and in range", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			key := uniuri.NewLen(1 + i%64)

			index := Hash(key, 100)
			require.GreaterOrEqual(t, index, 0)
			require.Less(t, index, 100)
			require.Equal(t, index, Hash(key, 100))
		}
	})

	t.Run("single bucket swallows everything", func(t *testing.T) {
		for _, key := range []string{"", "a", "Alice", uniuri.New()} {
			require.Equal(t, 0, Hash(key, 1))
		}
	})
}

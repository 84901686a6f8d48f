package movies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		wantFound bool
		wantTitle string
	}{
		{name: "существующий фильм", id: 1, wantFound: true, wantTitle: "The Shawshank Redemption"},
		{name: "последний фильм каталога", id: 6, wantFound: true, wantTitle: "Inception"},
		{name: "несуществующий фильм", id: 99, wantFound: false},
		{name: "нулевой id", id: 0, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Find(tt.id)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantTitle, m.Title)
				assert.Equal(t, tt.id, m.ID)
			}
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	require.NotEmpty(t, first)

	first[0].Title = "mutated"

	second := All()
	assert.NotEqual(t, "mutated", second[0].Title)
	assert.Len(t, second, len(first))
}

package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource returns scripted indices, wrapping around.
type seqSource struct {
	picks []int
	next  int
}

func (s *seqSource) Intn(n int) int {
	v := s.picks[s.next%len(s.picks)] % n
	s.next++
	return v
}

func TestValid(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"ab", false},
		{"", false},
		{"well-known", false},
		{"o'clock", true},
		{"ice cream", true},
		{"café", false},
		{"tab\tbed", false},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, Valid(tc.word))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "apple", Normalize("Apple \r\n"))
	assert.Equal(t, " apple", Normalize(" APPLE"), "only trailing whitespace is trimmed")
}

func TestNewFiltersInvalidEntries(t *testing.T) {
	d, err := New([]string{"ox", "Zebra\n", "x-ray", "dog", "é-é"}, &seqSource{picks: []int{0}})
	require.NoError(t, err)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"zebra", "dog"}, d.Words())
}

func TestNewNoValidWords(t *testing.T) {
	_, err := New([]string{"ab", "a-b-c", ""}, nil)
	require.ErrorIs(t, err, ErrNoValidWords)

	_, err = New(nil, nil)
	require.ErrorIs(t, err, ErrNoValidWords)
}

func TestPickWordUsesSource(t *testing.T) {
	d, err := New([]string{"cat", "dog", "owl"}, &seqSource{picks: []int{2, 0, 1}})
	require.NoError(t, err)

	assert.Equal(t, "owl", d.PickWord())
	assert.Equal(t, "cat", d.PickWord())
	assert.Equal(t, "dog", d.PickWord())
}

func TestPickWordAlwaysValid(t *testing.T) {
	entries := []string{"a", "be", "sea-side", "Kite", "toy ", "xylophone"}
	d, err := New(entries, NewSource(42))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		w := d.PickWord()
		assert.Truef(t, Valid(w), "picked invalid word %q", w)
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	entries := Default()
	a, err := New(entries, NewSource(7))
	require.NoError(t, err)
	b, err := New(entries, NewSource(7))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.Equal(t, a.PickWord(), b.PickWord())
	}
}

func TestWithSourceSharesWords(t *testing.T) {
	d, err := New([]string{"cat", "dog"}, &seqSource{picks: []int{0}})
	require.NoError(t, err)

	other := d.WithSource(&seqSource{picks: []int{1}})
	assert.Equal(t, "cat", d.PickWord())
	assert.Equal(t, "dog", other.PickWord())
	assert.Equal(t, d.Len(), other.Len())
}

func TestWordsReturnsCopy(t *testing.T) {
	d, err := New([]string{"cat"}, nil)
	require.NoError(t, err)

	w := d.Words()
	w[0] = "xxx"
	assert.Equal(t, "cat", d.PickWord())
}

package charset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmpty(t *testing.T) {
	_, err := Build()
	assert.ErrorIs(t, err, ErrEmptySelectorSet)
}

func TestBuildUnknown(t *testing.T) {
	_, err := Build(Lower, Selector("klingon"))
	assert.ErrorIs(t, err, ErrUnknownSelector)
}

func TestBuildSortedAndDeduplicated(t *testing.T) {
	a, err := Build(Digit, Lower)
	require.NoError(t, err)
	assert.Equal(t, 36, a.Size())
	assert.Equal(t, '0', a.Chars[0])
	assert.Equal(t, 'z', a.Chars[35])
	assert.Equal(t, "digits + lowercase letters", a.Label)

	// ascii already contains every symbol, digit and letter
	b, err := Build(ASCII, Symbol, Digit, Upper, Lower)
	require.NoError(t, err)
	assert.Equal(t, 95, b.Size())
	for i := 1; i < len(b.Chars); i++ {
		assert.Less(t, b.Chars[i-1], b.Chars[i])
	}
}

func TestBuildOrderIndependent(t *testing.T) {
	perms := [][]Selector{
		{Lower, Upper, Digit},
		{Digit, Lower, Upper},
		{Upper, Upper, Digit, Lower, Digit},
	}
	first, err := Build(perms[0]...)
	require.NoError(t, err)
	for _, p := range perms[1:] {
		a, err := Build(p...)
		require.NoError(t, err)
		assert.Equal(t, first.Chars, a.Chars)
		assert.ElementsMatch(t,
			[]string{"lowercase letters", "uppercase letters", "digits"},
			strings.Split(a.Label, " + "))
	}

	again, err := Build(Upper, Upper, Digit, Lower)
	require.NoError(t, err)
	assert.Equal(t, "uppercase letters + digits + lowercase letters", again.Label)
}

func TestSelectorSizes(t *testing.T) {
	cases := map[Selector]int{
		Pinyin:  20,
		Lower:   26,
		Upper:   26,
		Digit:   10,
		Symbol:  33,
		ASCII:   95,
		Chinese: 3500,
	}
	for sel, want := range cases {
		a, err := Build(sel)
		require.NoError(t, err)
		assert.Equal(t, want, a.Size(), sel)
	}

	fw, err := Build(Fullwidth)
	require.NoError(t, err)
	for _, r := range fw.Chars {
		assert.Greater(t, r, rune(0x7f))
	}
}

func TestChineseRange(t *testing.T) {
	a, err := Build(Chinese)
	require.NoError(t, err)
	assert.Equal(t, rune(0x4e00), a.Chars[0])
	assert.Equal(t, rune(0x4e00+3499), a.Chars[len(a.Chars)-1])
}

func TestParseSelectors(t *testing.T) {
	got, err := ParseSelectors([]string{"Lower", " digit ", ""})
	require.NoError(t, err)
	assert.Equal(t, []Selector{Lower, Digit}, got)

	_, err = ParseSelectors([]string{"hex"})
	assert.ErrorIs(t, err, ErrUnknownSelector)
}

func TestSelectorsListed(t *testing.T) {
	for _, s := range Selectors() {
		assert.NotEmpty(t, s.Label())
		assert.NotEmpty(t, s.Chars())
	}
	assert.Nil(t, Selector("nope").Chars())
}

// Package charset builds password alphabets and maps ordinals onto the
// password space they span.
package charset

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Selector names one built-in character class.
type Selector string

const (
	Pinyin    Selector = "pinyin"
	Lower     Selector = "lower"
	Upper     Selector = "upper"
	Digit     Selector = "digit"
	Symbol    Selector = "symbol"
	ASCII     Selector = "ascii"
	Fullwidth Selector = "fullwidth"
	Chinese   Selector = "chinese"
)

var (
	ErrEmptySelectorSet = errors.New("at least one charset must be selected")
	ErrUnknownSelector  = errors.New("unknown charset")
)

// Alphabet is the sorted, deduplicated union of one or more selectors.
type Alphabet struct {
	Label string
	Chars []rune
}

func (a Alphabet) Size() int { return len(a.Chars) }

// Password returns the password at ordinal for the given length.
func (a Alphabet) Password(ordinal uint64, length int) string {
	return IndexToPassword(ordinal, a.Chars, length)
}

type class struct {
	label string
	chars func() []rune
}

var classes = map[Selector]class{
	Pinyin:    {"pinyin initials", func() []rune { return []rune("bpmfdtnlgkhjqxzcsryw") }},
	Lower:     {"lowercase letters", func() []rune { return runeRange('a', 'z') }},
	Upper:     {"uppercase letters", func() []rune { return runeRange('A', 'Z') }},
	Digit:     {"digits", func() []rune { return runeRange('0', '9') }},
	Symbol:    {"ASCII symbols", asciiSymbols},
	ASCII:     {"printable ASCII", func() []rune { return runeRange(' ', '~') }},
	Fullwidth: {"full-width symbols", func() []rune { return []rune(fullwidthSymbols) }},
	Chinese:   {"common CJK ideographs", cjkIdeographs},
}

// order used when listing selectors
var selectorOrder = []Selector{Pinyin, Lower, Upper, Digit, Symbol, ASCII, Fullwidth, Chinese}

const fullwidthSymbols = "，。、；：？！…—·“”‘’（）【】《》『』「」〈〉￥※〃々" +
	"＋－×÷＝≠＜＞≤≥％‰°℃＄￡￠＠＃＆＊§〒〓□■△▲○●◎☆★◇◆〔〕〖〗"

const cjkBase, cjkCount = 0x4e00, 3500

func runeRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

func asciiSymbols() []rune {
	out := []rune{' '}
	out = append(out, runeRange('!', '/')...)
	out = append(out, runeRange(':', '@')...)
	out = append(out, runeRange('[', '`')...)
	out = append(out, runeRange('{', '~')...)
	return out
}

func cjkIdeographs() []rune {
	return runeRange(cjkBase, cjkBase+cjkCount-1)
}

// Selectors lists every known selector in display order.
func Selectors() []Selector {
	return slices.Clone(selectorOrder)
}

// Label returns the human-readable name of s.
func (s Selector) Label() string {
	return classes[s].label
}

// Chars returns the fixed character list of s, or nil if s is unknown.
func (s Selector) Chars() []rune {
	c, ok := classes[s]
	if !ok {
		return nil
	}
	return c.chars()
}

// ParseSelectors converts names such as "lower" or "Digit" into selectors.
func ParseSelectors(names []string) ([]Selector, error) {
	out := make([]Selector, 0, len(names))
	for _, n := range names {
		s := Selector(strings.ToLower(strings.TrimSpace(n)))
		if s == "" {
			continue
		}
		if _, ok := classes[s]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSelector, n)
		}
		out = append(out, s)
	}
	return out, nil
}

// Build merges the given selectors into one alphabet. Repeated selectors
// collapse; labels keep first-seen order and characters are sorted by code
// point so the same combination always enumerates the same way.
func Build(selectors ...Selector) (Alphabet, error) {
	if len(selectors) == 0 {
		return Alphabet{}, ErrEmptySelectorSet
	}

	seenSel := make(map[Selector]struct{}, len(selectors))
	seenChar := make(map[rune]struct{})
	var labels []string
	var chars []rune

	for _, s := range selectors {
		c, ok := classes[s]
		if !ok {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrUnknownSelector, string(s))
		}
		if _, dup := seenSel[s]; dup {
			continue
		}
		seenSel[s] = struct{}{}
		labels = append(labels, c.label)
		for _, r := range c.chars() {
			if _, dup := seenChar[r]; dup {
				continue
			}
			seenChar[r] = struct{}{}
			chars = append(chars, r)
		}
	}

	slices.Sort(chars)
	return Alphabet{Label: strings.Join(labels, " + "), Chars: chars}, nil
}

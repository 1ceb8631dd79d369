// Package wordcount computes text statistics: characters, words, sentences,
// paragraphs and an estimated reading time.
package wordcount // import "fortio.org/devtools/wordcount"

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// WordsPerMinute is the reading speed used for ReadingMinutes.
const WordsPerMinute = 225

type Stats struct {
	Characters         int // user perceived characters (grapheme clusters)
	CharactersNoSpaces int
	Words              int
	Sentences          int // runs of . ! or ?
	Paragraphs         int // non empty chunks between newlines
	ReadingMinutes     int // rounded up
}

var (
	sentenceEnd  = regexp.MustCompile(`[.!?]+`)
	newlineRuns  = regexp.MustCompile(`\n+`)
	noWhitespace = func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}
)

func Count(text string) Stats {
	if text == "" {
		return Stats{}
	}
	s := Stats{
		Characters:         uniseg.GraphemeClusterCount(text),
		CharactersNoSpaces: uniseg.GraphemeClusterCount(strings.Map(noWhitespace, text)),
		Words:              len(strings.Fields(text)),
		Sentences:          len(sentenceEnd.FindAllStringIndex(text, -1)),
	}
	for _, p := range newlineRuns.Split(text, -1) {
		if p != "" {
			s.Paragraphs++
		}
	}
	s.ReadingMinutes = (s.Words + WordsPerMinute - 1) / WordsPerMinute
	return s
}

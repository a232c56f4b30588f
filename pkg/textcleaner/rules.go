package textcleaner

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const nbsp = "\u00a0"

var (
	htmlTagRe         = regexp.MustCompile(`(?is)</?[a-z!?][^>]*?>`)
	newlinesTabsRe    = regexp.MustCompile(`\\n|\n|\t|\\`)
	singleQuotesRe    = regexp.MustCompile(`'{2,}`)
	doubleQuotesRe    = regexp.MustCompile(`"{2,}`)
	extraWhitespaceRe = regexp.MustCompile(` {2,}`)
	urlRe             = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+`)

	// Unicode punctuation plus every ASCII punctuation character, some of which are symbols (S*) for Unicode.
	punctuationRe = regexp.MustCompile("[\\p{P}!-/:-@\\[-`{-~]+")
	digitsRe      = regexp.MustCompile(`[0-9]+`)
)

// casers are stateful, one per goroutine.
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

func removeHTMLTags(s string) string {
	return htmlTagRe.ReplaceAllLiteralString(s, " ")
}

func decodeHTMLEntities(s string) string {
	return html.UnescapeString(s)
}

func replaceAccented(s string) string {
	return accentReplacer.Replace(s)
}

func replaceUnicodeNBSP(s string) string {
	return strings.ReplaceAll(s, nbsp, " ")
}

func replaceNewlinesTabs(s string) string {
	return newlinesTabsRe.ReplaceAllLiteralString(s, " ")
}

func removeExtraQuotation(s string) string {
	s = singleQuotesRe.ReplaceAllLiteralString(s, "'")
	return doubleQuotesRe.ReplaceAllLiteralString(s, `"`)
}

func removeExtraWhitespaces(s string) string {
	return extraWhitespaceRe.ReplaceAllLiteralString(s, " ")
}

func removeURLs(s string) string {
	return urlRe.ReplaceAllLiteralString(s, "")
}

func removePunctuation(s string) string {
	return punctuationRe.ReplaceAllLiteralString(s, "")
}

func lowercase(s string) string {
	if s == "" {
		return s
	}

	c := lowerPool.Get().(*cases.Caser)
	defer lowerPool.Put(c)

	return c.String(s)
}

func removeDigits(s string) string {
	return digitsRe.ReplaceAllLiteralString(s, "")
}

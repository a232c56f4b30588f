package textcleaner

import (
	"strings"
)

// StepKey identifies a cleaning step.
type StepKey string

const (
	RemoveHTMLTags         StepKey = "REMOVE_HTML_TAGS"
	DecodeHTMLEntities     StepKey = "DECODE_HTML_ENTITIES"
	ReplaceAccented        StepKey = "REPLACE_ACCENTED"
	ReplaceUnicodeNBSP     StepKey = "REPLACE_UNICODE_NBSP"
	ReplaceNewlinesTabs    StepKey = "REPLACE_NEWLINES_TABS"
	RemoveExtraQuotation   StepKey = "REMOVE_EXTRA_QUOTATION"
	RemoveExtraWhitespaces StepKey = "REMOVE_EXTRA_WHITESPACES"
	RemoveURLs             StepKey = "REMOVE_URLS"
	RemovePunctuation      StepKey = "REMOVE_PUNCTUATION"
	Lowercase              StepKey = "LOWERCASE"
	RemoveDigits           StepKey = "REMOVE_DIGITS"
)

func (k StepKey) String() string {
	return string(k)
}

// Valid reports whether k is a registered step.
func (k StepKey) Valid() bool {
	_, ok := registry[k]
	return ok
}

// Rule is a pure text transformation. A rule must accept any string, including the empty one.
type Rule func(string) string

// Step is a registered cleaning rule.
type Step struct {
	Key         StepKey
	Description string
	Rule        Rule
}

// catalogue lists the steps in their canonical order.
var catalogue = []Step{
	{RemoveHTMLTags, "replace every HTML tag with a space", removeHTMLTags},
	{DecodeHTMLEntities, "decode named and numeric HTML entities", decodeHTMLEntities},
	{ReplaceAccented, "fold accented Latin letters and currency symbols to ASCII", replaceAccented},
	{ReplaceUnicodeNBSP, "replace non-breaking spaces with regular spaces", replaceUnicodeNBSP},
	{ReplaceNewlinesTabs, `replace newlines, tabs, literal \n and backslashes with spaces`, replaceNewlinesTabs},
	{RemoveExtraQuotation, "collapse repeated quotation marks", removeExtraQuotation},
	{RemoveExtraWhitespaces, "collapse runs of spaces into one", removeExtraWhitespaces},
	{RemoveURLs, "remove http, https and www URLs", removeURLs},
	{RemovePunctuation, "remove punctuation characters", removePunctuation},
	{Lowercase, "lowercase every letter", lowercase},
	{RemoveDigits, "remove ASCII digits", removeDigits},
}

var registry = newRegistry(catalogue)

func newRegistry(steps []Step) map[StepKey]Step {
	reg := make(map[StepKey]Step, len(steps))
	for _, s := range steps {
		reg[s.Key] = s
	}

	return reg
}

// Lookup returns the step registered under key.
func Lookup(key StepKey) (Step, error) {
	step, ok := registry[key]
	if !ok {
		return Step{}, &UnknownStepError{Key: string(key)}
	}

	return step, nil
}

// ParseStepKey converts a runtime identifier into a StepKey.
// Case, surrounding spaces and dashes used in place of underscores are tolerated: "remove-digits" is RemoveDigits.
func ParseStepKey(name string) (StepKey, error) {
	key := StepKey(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_")))
	if !key.Valid() {
		return "", &UnknownStepError{Key: name}
	}

	return key, nil
}

// ParseStepKeys converts identifiers in order, failing on the first unknown one.
func ParseStepKeys(names []string) ([]StepKey, error) {
	keys := make([]StepKey, 0, len(names))
	for _, name := range names {
		key, err := ParseStepKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// Keys returns every registered key in canonical order.
func Keys() []StepKey {
	keys := make([]StepKey, len(catalogue))
	for i, s := range catalogue {
		keys[i] = s.Key
	}

	return keys
}

// Steps returns the registered steps in canonical order.
func Steps() []Step {
	steps := make([]Step, len(catalogue))
	copy(steps, catalogue)

	return steps
}

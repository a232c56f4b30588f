package textcleaner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-textcleaner/pkg/textcleaner"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []textcleaner.StepKey{
		textcleaner.RemoveHTMLTags,
		textcleaner.DecodeHTMLEntities,
		textcleaner.ReplaceAccented,
		textcleaner.ReplaceUnicodeNBSP,
		textcleaner.ReplaceNewlinesTabs,
		textcleaner.RemoveExtraQuotation,
		textcleaner.RemoveExtraWhitespaces,
		textcleaner.RemoveURLs,
		textcleaner.RemovePunctuation,
		textcleaner.Lowercase,
		textcleaner.RemoveDigits,
	}, textcleaner.Keys())
}

func TestSteps(t *testing.T) {
	t.Parallel()

	steps := textcleaner.Steps()
	require.Len(t, steps, 11)

	for _, step := range steps {
		assert.True(t, step.Key.Valid())
		assert.NotEmpty(t, step.Description, step.Key)
		assert.NotNil(t, step.Rule, step.Key)
	}

	steps[0].Description = "changed"
	assert.NotEqual(t, "changed", textcleaner.Steps()[0].Description)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	step, err := textcleaner.Lookup(textcleaner.RemoveDigits)
	require.NoError(t, err)
	assert.Equal(t, textcleaner.RemoveDigits, step.Key)
	assert.Equal(t, "ab", step.Rule("a1b2"))

	_, err = textcleaner.Lookup("REMOVE_EVERYTHING")
	require.ErrorIs(t, err, textcleaner.ErrUnknownStep)
}

func TestParseStepKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    textcleaner.StepKey
		wantErr bool
	}{
		{in: "REMOVE_HTML_TAGS", want: textcleaner.RemoveHTMLTags},
		{in: "remove_html_tags", want: textcleaner.RemoveHTMLTags},
		{in: "remove-urls", want: textcleaner.RemoveURLs},
		{in: "  Lowercase\t", want: textcleaner.Lowercase},
		{in: "not_a_step", wantErr: true},
		{in: "", wantErr: true},
		{in: "REMOVE HTML TAGS", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := textcleaner.ParseStepKey(tt.in)
			if tt.wantErr {
				var unknown *textcleaner.UnknownStepError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, tt.in, unknown.Key)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStepKeys(t *testing.T) {
	t.Parallel()

	keys, err := textcleaner.ParseStepKeys([]string{"lowercase", "remove-digits", "LOWERCASE"})
	require.NoError(t, err)
	assert.Equal(t, []textcleaner.StepKey{textcleaner.Lowercase, textcleaner.RemoveDigits, textcleaner.Lowercase}, keys)

	keys, err = textcleaner.ParseStepKeys(nil)
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = textcleaner.ParseStepKeys([]string{"lowercase", "bogus", "also-bogus"})
	assert.EqualError(t, err, `unknown step "bogus"`)
}

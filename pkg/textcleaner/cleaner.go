package textcleaner

import (
	"strings"
)

// Sequence is a validated, ordered list of steps. The zero value is the identity sequence.
type Sequence struct {
	steps []Step
}

// Compile validates keys and returns the sequence applying them in the given order.
// Keys may repeat; nothing is reordered or deduplicated.
func Compile(keys ...StepKey) (Sequence, error) {
	steps := make([]Step, 0, len(keys))
	for _, key := range keys {
		step, err := Lookup(key)
		if err != nil {
			return Sequence{}, err
		}
		steps = append(steps, step)
	}

	return Sequence{steps: steps}, nil
}

// CompileNames is Compile for runtime identifiers, see ParseStepKey.
func CompileNames(names ...string) (Sequence, error) {
	keys, err := ParseStepKeys(names)
	if err != nil {
		return Sequence{}, err
	}

	return Compile(keys...)
}

// Apply folds text through every step of the sequence.
func (s Sequence) Apply(text string) string {
	for _, step := range s.steps {
		text = step.Rule(text)
	}

	return text
}

// Steps returns a copy of the compiled steps in order.
func (s Sequence) Steps() []Step {
	steps := make([]Step, len(s.steps))
	copy(steps, s.steps)

	return steps
}

// Keys returns the ordered step keys.
func (s Sequence) Keys() []StepKey {
	keys := make([]StepKey, len(s.steps))
	for i, step := range s.steps {
		keys[i] = step.Key
	}

	return keys
}

func (s Sequence) Len() int {
	return len(s.steps)
}

func (s Sequence) String() string {
	names := make([]string, len(s.steps))
	for i, step := range s.steps {
		names[i] = string(step.Key)
	}

	return strings.Join(names, " -> ")
}

// Clean applies keys to text in order.
// If any key is unknown nothing is applied and an *UnknownStepError is returned with an empty string.
func Clean(text string, keys ...StepKey) (string, error) {
	seq, err := Compile(keys...)
	if err != nil {
		return "", err
	}

	return seq.Apply(text), nil
}

// CleanNames is Clean for runtime identifiers.
func CleanNames(text string, names ...string) (string, error) {
	seq, err := CompileNames(names...)
	if err != nil {
		return "", err
	}

	return seq.Apply(text), nil
}

// Cleaner holds a subject text between cleaning calls.
// It is a value: Apply returns a new Cleaner and leaves the receiver untouched.
type Cleaner struct {
	text string
}

// New returns a Cleaner bound to text.
func New(text string) Cleaner {
	return Cleaner{text: text}
}

// Apply returns a Cleaner holding the text after keys have been applied.
// On error the returned Cleaner is the receiver, unchanged.
func (c Cleaner) Apply(keys ...StepKey) (Cleaner, error) {
	out, err := Clean(c.text, keys...)
	if err != nil {
		return c, err
	}

	return Cleaner{text: out}, nil
}

// Clean applies keys to the held text and returns the result.
func (c Cleaner) Clean(keys ...StepKey) (string, error) {
	return Clean(c.text, keys...)
}

// Text returns the held text.
func (c Cleaner) Text() string {
	return c.text
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"sukhan/internal/modules/curriculum/domain"
)

func TestWordIDRoundTrip(t *testing.T) {
	t.Parallel()
	ref := domain.WordRef{Category: "people_family", Index: 3}
	assert.Equal(t, "people_family_3", ref.ID())

	parsed, err := domain.ParseWordID("people_family_3")
	require.NoError(t, err)
	assert.Equal(t, ref, parsed)

	for _, bad := range []string{"", "greetings", "_3", "greetings_", "greetings_x", "greetings_-1"} {
		_, err := domain.ParseWordID(bad)
		assert.Errorf(t, err, "expected %q to be rejected", bad)
	}
}

func TestWordRefYAMLAcceptsBothForms(t *testing.T) {
	t.Parallel()
	var lesson domain.Lesson
	raw := "id: l1\nwords:\n  - greetings_0\n  - {category: food, index: 2}\n"
	require.NoError(t, yaml.Unmarshal([]byte(raw), &lesson))
	assert.Equal(t, []domain.WordRef{
		{Category: "greetings", Index: 0},
		{Category: "food", Index: 2},
	}, lesson.Words)

	require.Error(t, yaml.Unmarshal([]byte("words: [nonsense]\n"), &lesson))
}

func TestDictionaryLookup(t *testing.T) {
	t.Parallel()
	dict := domain.Dictionary{
		"greetings": {{Tajik: "салом", English: "hello"}},
		"colors":    {{Tajik: "сурх", English: "red"}},
	}
	word, ok := dict.Lookup(domain.WordRef{Category: "greetings", Index: 0})
	require.True(t, ok)
	assert.Equal(t, "hello", word.English)

	_, ok = dict.Lookup(domain.WordRef{Category: "greetings", Index: 1})
	assert.False(t, ok)
	_, ok = dict.Lookup(domain.WordRef{Category: "greetings", Index: -1})
	assert.False(t, ok)
	_, ok = dict.Lookup(domain.WordRef{Category: "weather", Index: 0})
	assert.False(t, ok)

	assert.Equal(t, []string{"colors", "greetings"}, dict.Categories())
}

func TestUnitValidate(t *testing.T) {
	t.Parallel()
	assert.Error(t, domain.Unit{}.Validate())
	assert.Error(t, domain.Unit{ID: "u", Lessons: []domain.Lesson{{ID: ""}}}.Validate())
	assert.Error(t, domain.Unit{ID: "u", Lessons: []domain.Lesson{{ID: "a"}, {ID: "a"}}}.Validate())
	unit := domain.Unit{ID: "u", Lessons: []domain.Lesson{
		{ID: "a", Words: make([]domain.WordRef, 2)},
		{ID: "b", Words: make([]domain.WordRef, 3)},
	}}
	require.NoError(t, unit.Validate())
	assert.Equal(t, 5, unit.WordCount())
}

package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// WordIDSeparator joins category and index in a WordId.
const WordIDSeparator = "_"

// WordRef addresses one entry of the dictionary.
type WordRef struct {
	Category string `json:"category" yaml:"category"`
	Index    int    `json:"index" yaml:"index"`
}

// ID is the canonical key used wherever word state is persisted.
func (r WordRef) ID() string {
	return r.Category + WordIDSeparator + strconv.Itoa(r.Index)
}

func (r WordRef) String() string {
	return r.ID()
}

// ParseWordID splits at the last separator since categories may contain one
// themselves (people_family_3).
func ParseWordID(id string) (WordRef, error) {
	pos := strings.LastIndex(id, WordIDSeparator)
	if pos <= 0 || pos == len(id)-1 {
		return WordRef{}, fmt.Errorf("invalid word id %q", id)
	}
	index, err := strconv.Atoi(id[pos+1:])
	if err != nil || index < 0 {
		return WordRef{}, fmt.Errorf("invalid word id %q", id)
	}
	return WordRef{Category: id[:pos], Index: index}, nil
}

// UnmarshalYAML accepts either {category, index} or a WordId scalar.
func (r *WordRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		ref, err := ParseWordID(node.Value)
		if err != nil {
			return err
		}
		*r = ref
		return nil
	}
	type plain WordRef
	decoded := plain{}
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*r = WordRef(decoded)
	return nil
}

type Word struct {
	Tajik                 string `json:"tajik"`
	English               string `json:"english"`
	Russian               string `json:"russian"`
	PronunciationLatin    string `json:"pronunciation_latin"`
	PronunciationCyrillic string `json:"pronunciation_cyrillic"`
}

// Dictionary maps a category to its ordered word list.
type Dictionary map[string][]Word

func (d Dictionary) Lookup(ref WordRef) (Word, bool) {
	words, ok := d[ref.Category]
	if !ok || ref.Index < 0 || ref.Index >= len(words) {
		return Word{}, false
	}
	return words[ref.Index], true
}

func (d Dictionary) Categories() []string {
	out := make([]string, 0, len(d))
	for category := range d {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

package domain

import (
	"slices"

	"github.com/samber/lo"

	curriculumdomain "sukhan/internal/modules/curriculum/domain"
	"sukhan/internal/platform/random"
)

const (
	QuizSize            = 5
	FallbackSize        = 5
	DerangementAttempts = 50
)

// TargetCount is ceil(0.7 * n), computed in integers.
func TargetCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (7*n + 9) / 10
}

// WordsUpToLesson concatenates the words of lessons 0..upTo in lesson order.
// upTo is clamped to the lesson count.
func WordsUpToLesson(lessons [][]curriculumdomain.WordRef, upTo int) []curriculumdomain.WordRef {
	if upTo < 0 {
		return nil
	}
	upTo = min(upTo, len(lessons)-1)
	var words []curriculumdomain.WordRef
	for _, lesson := range lessons[:upTo+1] {
		words = append(words, lesson...)
	}
	return lo.Uniq(words)
}

// Selector draws review and quiz sets from an injected source so runs are
// reproducible under a fixed seed.
type Selector struct {
	rng random.Source
}

func NewSelector(rng random.Source) Selector {
	return Selector{rng: rng}
}

// Sample returns k distinct items in random order. The input is not modified.
func Sample[T any](rng random.Source, items []T, k int) []T {
	pool := slices.Clone(items)
	k = max(0, min(k, len(pool)))
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func Shuffle[T any](rng random.Source, items []T) []T {
	out := slices.Clone(items)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Review applies the coverage quota: every hard word is kept and, when they
// fall short of TargetCount(len(all)), the gap is filled from the other words.
func (s Selector) Review(all, hard []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	if len(all) == 0 {
		return nil
	}
	hard = lo.Filter(lo.Uniq(hard), func(ref curriculumdomain.WordRef, _ int) bool {
		return lo.Contains(all, ref)
	})
	target := TargetCount(len(all))
	if len(hard) >= target {
		return Shuffle(s.rng, hard)
	}
	rest := lo.Filter(all, func(ref curriculumdomain.WordRef, _ int) bool {
		return !lo.Contains(hard, ref)
	})
	picked := append(slices.Clone(hard), Sample(s.rng, rest, target-len(hard))...)
	return Shuffle(s.rng, picked)
}

// MidReview is Review with a first-session fallback: when none of the
// covered words has been rated yet, the first FallbackSize words are used.
func (s Selector) MidReview(all, hard, easy []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	if len(hard) == 0 && len(easy) == 0 {
		return slices.Clone(all[:min(FallbackSize, len(all))])
	}
	return s.Review(all, hard)
}

func (s Selector) Quiz(all []curriculumdomain.WordRef) []curriculumdomain.WordRef {
	return Sample(s.rng, lo.Uniq(all), QuizSize)
}

// ShuffleTranslations looks for a permutation with no fixed points and gives
// up after DerangementAttempts tries, returning the last attempt.
func (s Selector) ShuffleTranslations(translations []string) []string {
	if len(translations) < 2 {
		return slices.Clone(translations)
	}
	var attempt []string
	for range DerangementAttempts {
		attempt = Shuffle(s.rng, translations)
		if isDerangement(translations, attempt) {
			break
		}
	}
	return attempt
}

func isDerangement(original, permuted []string) bool {
	for i := range original {
		if original[i] == permuted[i] {
			return false
		}
	}
	return true
}

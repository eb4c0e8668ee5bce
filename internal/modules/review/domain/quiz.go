package domain

// QuizResult counts matched word/translation pairs.
type QuizResult struct {
	Correct int
	Total   int
}

// Grade checks each answer (word index to offered translation index) against
// the expected translation of that word. Unanswered words count as wrong.
func Grade(expected, offered []string, answers map[int]int) QuizResult {
	result := QuizResult{Total: len(expected)}
	for wordIdx, want := range expected {
		pick, ok := answers[wordIdx]
		if !ok || pick < 0 || pick >= len(offered) {
			continue
		}
		if offered[pick] == want {
			result.Correct++
		}
	}
	return result
}

func (r QuizResult) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

func (r QuizResult) Passed(passRatio float64) bool {
	return r.Total > 0 && r.Ratio() >= passRatio
}

package domain

import (
	"fmt"
	"strings"
)

type Lesson struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Words       []WordRef `yaml:"words"`
}

type Unit struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Order       int      `yaml:"order"`
	Lessons     []Lesson `yaml:"lessons"`
}

func (u Unit) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("unit id is required")
	}
	seen := map[string]struct{}{}
	for i, lesson := range u.Lessons {
		if strings.TrimSpace(lesson.ID) == "" {
			return fmt.Errorf("unit %s: lesson %d has no id", u.ID, i+1)
		}
		if _, dup := seen[lesson.ID]; dup {
			return fmt.Errorf("unit %s: duplicate lesson id %s", u.ID, lesson.ID)
		}
		seen[lesson.ID] = struct{}{}
	}
	return nil
}

func (u Unit) WordCount() int {
	total := 0
	for _, lesson := range u.Lessons {
		total += len(lesson.Words)
	}
	return total
}

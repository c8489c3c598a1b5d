package modeltest

import (
	"sort"
	"strings"

	"github.com/trezcool/examprep/core"
)

// Filter narrows down the tests listed on the model tests screen.
type Filter struct {
	Search     string
	Subjects   []string
	Difficulty Difficulty
}

// Match reports whether t passes every set criterion.
// Search matches the title or the description, case-insensitively.
// Subjects match when the test covers any of them.
func (f Filter) Match(t Test) bool {
	if search := core.CleanString(f.Search, true); search != "" {
		if !strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			return false
		}
	}
	if len(f.Subjects) > 0 && !anyIn(f.Subjects, t.Subjects) {
		return false
	}
	if f.Difficulty != "" && f.Difficulty != DifficultyAll && t.Difficulty != f.Difficulty {
		return false
	}
	return true
}

func (f Filter) Apply(tests []Test) []Test {
	filtered := make([]Test, 0, len(tests))
	for _, t := range tests {
		if f.Match(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func anyIn(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}

// AvailableTopics returns the sorted topics of the selected subjects.
func AvailableTopics(subjects []string, topicsBySubject map[string][]string) []string {
	seen := make(map[string]struct{})
	topics := make([]string, 0)
	for _, subject := range subjects {
		for _, topic := range topicsBySubject[subject] {
			if _, ok := seen[topic]; !ok {
				seen[topic] = struct{}{}
				topics = append(topics, topic)
			}
		}
	}
	sort.Strings(topics)
	return topics
}

// TopicsBySubject indexes the topics covered by tests under each of their subjects.
func TopicsBySubject(tests []Test) map[string][]string {
	index := make(map[string][]string)
	for _, t := range tests {
		for _, subject := range t.Subjects {
			index[subject] = append(index[subject], t.Topics...)
		}
	}
	return index
}

// Sort orders tests in place by title, difficulty, timeLimit or questionsCount.
// Unknown fields are ignored; the original order breaks ties.
func Sort(tests []Test, orderings []core.Ordering) {
	if len(orderings) == 0 {
		return
	}
	sort.SliceStable(tests, func(i, j int) bool {
		for _, ord := range orderings {
			cmp := compareTests(tests[i], tests[j], ord.Field)
			if cmp == 0 {
				continue
			}
			if ord.Ascending {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})
}

func compareTests(a, b Test, field string) int {
	switch field {
	case "title":
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case "difficulty":
		return difficultyRanks[a.Difficulty] - difficultyRanks[b.Difficulty]
	case "timeLimit":
		return a.TimeLimit - b.TimeLimit
	case "questionsCount":
		return a.QuestionsCount - b.QuestionsCount
	default:
		return 0
	}
}

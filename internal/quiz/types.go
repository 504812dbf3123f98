package quiz

// Quiz is the generated multiple-choice quiz returned to the caller.
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice item.
type Question struct {
	// ID is the 1-based position of the question in the quiz.
	ID int `json:"id"`

	Question string `json:"question"`

	// Options are the answer choices in display order.
	Options []string `json:"options"`

	// CorrectIndex is the zero-based index into Options of the right answer.
	CorrectIndex int `json:"correct_index"`

	// Explanation says briefly why the correct option is right.
	Explanation string `json:"explanation"`
}

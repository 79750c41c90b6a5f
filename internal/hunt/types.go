package hunt

// ResponseTypeMultipleChoice marks a question answered by picking one of its choices.
const ResponseTypeMultipleChoice = "multipleChoice"

// Question is the payload served for a scanned stop.
type Question struct {
	Question     string   `json:"question"`
	ResponseType string   `json:"responseType"`
	Choices      []string `json:"choices"`
	// EndpointURL is the URL the question was fetched from; answers are posted back to it.
	EndpointURL string `json:"-"`
}

// HasChoices reports whether the question should offer answer choices.
func (q Question) HasChoices() bool {
	return q.ResponseType == ResponseTypeMultipleChoice && len(q.Choices) > 0
}

// SubmitResult is the server verdict for a submitted answer.
type SubmitResult struct {
	IsCorrect   bool        `json:"isCorrect"`
	Coordinates Coordinates `json:"coordinates,omitempty"`
}

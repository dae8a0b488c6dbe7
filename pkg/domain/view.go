package domain

// Severity styles a feedback message.
type Severity string

const (
	SeverityWrong Severity = "wrong" // A wrong guess, round continues
	SeverityError Severity = "error" // A transient failure, retry is possible
)

// Overlay is the end-of-round card.
type Overlay struct {
	Result     Result `json:"result"`
	Icon       string `json:"icon"`
	Title      string `json:"title"`
	AnswerLine string `json:"answer_line"`
}

// View is a snapshot of the visible client state of a round.
type View struct {
	HintVisible bool   `json:"hint_visible"`
	Hint        string `json:"hint,omitempty"`

	WrongCount int `json:"wrong_count"`

	FeedbackVisible  bool     `json:"feedback_visible"`
	Feedback         string   `json:"feedback,omitempty"`
	FeedbackSeverity Severity `json:"feedback_severity,omitempty"`

	InputEnabled  bool `json:"input_enabled"`
	SubmitEnabled bool `json:"submit_enabled"`
	NextEnabled   bool `json:"next_enabled"`

	// InputResets counts how many times the input was cleared and refocused.
	InputResets int `json:"input_resets"`

	Overlay *Overlay `json:"overlay,omitempty"`
}

// NewView returns the view of a freshly loaded round.
func NewView() View {
	return View{
		InputEnabled:  true,
		SubmitEnabled: true,
		NextEnabled:   true,
	}
}

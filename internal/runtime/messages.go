package runtime

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Plural forms are registered in the default catalog and select on a
// trailing noun argument (see nounCount): a count of exactly 1 takes the singular
// noun, every other count takes the plural.
const (
	msgRemaining  = "Not quite! %d guess(es) remaining."
	msgAnswerLine = "The answer was: %s  (%d wrong guess(es))"
)

const msgNetworkError = "Network error, please try again."

func init() {
	must(message.Set(language.English, msgRemaining,
		plural.Selectf(2, "%d",
			"=1", "Not quite! %[1]d guess remaining.",
			plural.Other, "Not quite! %[1]d guesses remaining.",
		)))
	must(message.Set(language.English, msgAnswerLine,
		plural.Selectf(3, "%d",
			"=1", "The answer was: %[1]s  (%[2]d wrong guess)",
			plural.Other, "The answer was: %[1]s  (%[2]d wrong guesses)",
		)))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

var printer = message.NewPrinter(language.English)

// RemainingFeedback formats the feedback of a wrong, non-terminal guess.
func RemainingFeedback(remaining int) string {
	return printer.Sprintf(msgRemaining, remaining, nounCount(remaining))
}

// AnswerLine formats the answer line of the result overlay.
func AnswerLine(answer string, wrongGuesses int) string {
	return printer.Sprintf(msgAnswerLine, answer, wrongGuesses, nounCount(wrongGuesses))
}

// nounCount maps n onto the plural selector. CLDR rules match "=1" on the absolute
// value, so -1 would otherwise read as singular.
func nounCount(n int) int {
	if n == 1 {
		return 1
	}
	return 2
}

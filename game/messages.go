package game

import "fmt"

// Greeting is the scrolling text shown before the first round.
func Greeting() []string {
	return []string{
		"Gather The Jedi, Avoid The Sith!",
		"",
		"Move With Arrows Or A, W, D, X.",
		"Adjust Speed With - +",
		"The Sith Cuts The Snake.",
		"",
		"May The Force Be With You...",
		"",
		"Press Any Key To Start",
	}
}

var verdicts = []string{
	"You Are Still A Padawan, You Will Improve Soon!",
	"Good Game!",
	"Well Done!",
	"You Seem To Be Force Sensitive...",
	"Wow!! The Force Is Very Strong With You!",
}

// verdict thresholds, each one passed moves one line down verdicts
var verdictThresholds = []int{9, 49, 299, 999}

// Farewell is the scrolling text shown after a round with the given score.
func Farewell(score int) []string {
	idx := 0
	for _, t := range verdictThresholds {
		if score > t {
			idx++
		}
	}

	plural := "s"
	if score == 1 {
		plural = ""
	}
	end := "."
	if score >= 300 {
		end = "!"
	}

	return []string{
		verdicts[idx],
		"",
		fmt.Sprintf("You earned %d point%s%s", score, plural, end),
		"",
		"Press Any Key...",
	}
}

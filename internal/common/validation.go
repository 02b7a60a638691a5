package common

import "strings"

const maxContentLength = 10000

// ValidateContent checks a text body or vote question.
func ValidateContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return InvalidArgumentf("content is empty")
	}
	if len(content) > maxContentLength {
		return InvalidArgumentf("content longer than %d characters", maxContentLength)
	}
	return nil
}

// ValidateVoteOptions checks the option label list of a vote message.
func ValidateVoteOptions(labels []string) error {
	if len(labels) == 0 {
		return InvalidArgumentf("vote needs at least one option")
	}
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			return InvalidArgumentf("vote option label is empty")
		}
	}
	return nil
}

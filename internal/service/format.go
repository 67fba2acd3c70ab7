package service

import (
	"strconv"
	"strings"
)

// NoGrammarIssues is shown when the service reports no feedback items.
const NoGrammarIssues = "No grammar or spelling errors found."

// PlagiarismUnknown is shown when the service provides neither a percentage
// nor an explanation.
const PlagiarismUnknown = "Unable to determine plagiarism status."

// FormatResult interprets a success response for the given action and
// produces the text shown on the output surface. A response that cannot be
// interpreted (e.g. a convert response with no processed text) is reported
// as ErrMalformedResponse so the caller treats it like any other server
// failure instead of recording an empty result.
func FormatResult(action Action, resp *Response) (string, error) {
	if resp == nil {
		return "", ErrMalformedResponse
	}

	switch action {
	case ActionConvert:
		if strings.TrimSpace(resp.ProcessedText) == "" {
			return "", ErrMalformedResponse
		}
		return resp.ProcessedText, nil

	case ActionGrammar:
		if len(resp.Feedback) == 0 {
			return NoGrammarIssues, nil
		}
		return strings.Join(resp.Feedback, "\n"), nil

	case ActionPlagiarism:
		return formatPlagiarism(resp), nil

	default:
		return "", ErrMalformedResponse
	}
}

func formatPlagiarism(resp *Response) string {
	var parts []string
	if resp.Percentage != nil {
		parts = append(parts, "Plagiarism = "+strconv.FormatFloat(*resp.Percentage, 'f', -1, 64)+"%")
	}
	if detail := summarizeExplanation(resp.Explanation); detail != "" {
		parts = append(parts, detail)
	}
	if len(parts) == 0 {
		return PlagiarismUnknown
	}
	return strings.Join(parts, "\n")
}

// summarizeExplanation keeps at most the first two sentence-like segments of
// the explanation, re-appending a trailing period only when the original
// text contained one.
func summarizeExplanation(explanation string) string {
	if explanation == "" {
		return ""
	}

	var segments []string
	for _, seg := range strings.FieldsFunc(explanation, func(r rune) bool {
		return r == '.' || r == '\n'
	}) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
		if len(segments) == 2 {
			break
		}
	}
	if len(segments) == 0 {
		return ""
	}

	out := strings.Join(segments, ". ")
	if strings.Contains(explanation, ".") {
		out += "."
	}
	return out
}

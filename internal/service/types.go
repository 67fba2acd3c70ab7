package service

// Action selects which transformation the service performs.
type Action string

const (
	ActionConvert    Action = "convert"
	ActionGrammar    Action = "grammar_check"
	ActionPlagiarism Action = "plagiarism_check"
)

// Mode is the conversion direction carried on every request.
type Mode string

const (
	ModeSmsToFull Mode = "sms-to-full"
	ModeFullToSms Mode = "full-to-sms"
)

// Toggle returns the opposite conversion direction.
func (m Mode) Toggle() Mode {
	if m == ModeSmsToFull {
		return ModeFullToSms
	}
	return ModeSmsToFull
}

// Label is the human-readable mode name used in history entries.
func (m Mode) Label() string {
	if m == ModeSmsToFull {
		return "SMS to Full"
	}
	return "Full to SMS"
}

// Request is the JSON body sent to the text-processing endpoint.
type Request struct {
	Text                string            `json:"text"`
	Action              Action            `json:"action"`
	Mode                Mode              `json:"mode"`
	CustomAbbreviations map[string]string `json:"custom_abbreviations"`
}

// Response is the union of the per-action success shapes. Pointer fields
// distinguish absent from zero for the optional plagiarism values.
type Response struct {
	ProcessedText string   `json:"processed_text"`
	Feedback      []string `json:"feedback"`
	Percentage    *float64 `json:"percentage"`
	Explanation   string   `json:"explanation"`
}

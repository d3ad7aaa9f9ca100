package models

// ServiceTopic is one canned RTO service record served by the assistant.
type ServiceTopic struct {
	Summary   string   `json:"summary"`
	Documents []string `json:"documents"`
	Fees      string   `json:"fees"`
	Steps     []string `json:"steps"`
	Timeline  string   `json:"timeline"`
	Online    string   `json:"online"`
	Offline   string   `json:"offline"`
	Tips      []string `json:"tips"`
	Sources   []string `json:"sources"`
}

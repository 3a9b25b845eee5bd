package store

import "encoding/json"

// Settings is the persisted scalar preference bag. Every field is optional in
// the JSON document; unknown fields are ignored so newer files still load.
type Settings struct {
	ShowAutoMode          bool   `json:"showAutoMode"`
	ShowManualMode        bool   `json:"showManualMode"`
	ShowTeamMode          bool   `json:"showTeamMode"`
	SelectedTab           string `json:"selectedTab"`
	EnableSmartInput      bool   `json:"enableSmartInput"`
	ShowDurationInSeconds bool   `json:"showDurationInSeconds"`
	LastHourlyRate        string `json:"lastHourlyRate"`
	LastMinuteRate        string `json:"lastMinuteRate"`
}

// DefaultSettings is the state of a fresh install.
func DefaultSettings() Settings {
	return Settings{
		ShowAutoMode:          true,
		ShowManualMode:        true,
		ShowTeamMode:          true,
		SelectedTab:           "auto",
		EnableSmartInput:      true,
		ShowDurationInSeconds: true,
	}
}

// SaveSettings writes the full settings bag.
func (s *Store) SaveSettings(st Settings) error {
	return s.writeJSON(settingsFile, st)
}

// LoadSettings reads settings, filling missing fields with defaults. Decode
// is per-field so a document written by an older or newer build still
// contributes the fields it has.
func (s *Store) LoadSettings() Settings {
	st := DefaultSettings()
	raw := map[string]json.RawMessage{}
	if !s.readJSON(settingsFile, &raw) {
		return st
	}
	setBool := func(key string, dst *bool) {
		if r, ok := raw[key]; ok {
			var v bool
			if json.Unmarshal(r, &v) == nil {
				*dst = v
			}
		}
	}
	setString := func(key string, dst *string) {
		if r, ok := raw[key]; ok {
			var v string
			if json.Unmarshal(r, &v) == nil {
				*dst = v
			}
		}
	}
	setBool("showAutoMode", &st.ShowAutoMode)
	setBool("showManualMode", &st.ShowManualMode)
	setBool("showTeamMode", &st.ShowTeamMode)
	setBool("enableSmartInput", &st.EnableSmartInput)
	setBool("showDurationInSeconds", &st.ShowDurationInSeconds)
	setString("selectedTab", &st.SelectedTab)
	setString("lastHourlyRate", &st.LastHourlyRate)
	setString("lastMinuteRate", &st.LastMinuteRate)
	return st
}

package model

// AccessibilityPrefs stores a user's display and reader preferences.
type AccessibilityPrefs struct {
	UserID         string `json:"user_id"`
	HighContrast   bool   `json:"high_contrast"`
	LargeText      bool   `json:"large_text"`
	ReduceMotion   bool   `json:"reduce_motion"`
	ScreenReader   bool   `json:"screen_reader"`
	ReadAloudSpeed int    `json:"read_aloud_speed,omitempty"`
}

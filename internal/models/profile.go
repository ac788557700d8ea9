package models

// Theme choices for the reader profile.
const (
	ThemeLight    = "light"
	ThemeDark     = "dark"
	ThemeColorful = "colorful"
)

// Profile is the active reader profile held by the user store. It is a view
// concern, separate from the authentication account in users.go.
type Profile struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Age      int          `json:"age"`
	IsParent bool         `json:"is_parent"`
	ParentID *string      `json:"parent_id,omitempty"`
	Settings UserSettings `json:"settings"`
}

type UserSettings struct {
	Theme            string           `json:"theme"`
	ReadingGoal      int              `json:"reading_goal"` // books per month
	Notifications    bool             `json:"notifications"`
	ParentalControls ParentalControls `json:"parental_controls"`
}

type ParentalControls struct {
	RequireApproval bool     `json:"require_approval"`
	ContentFilter   bool     `json:"content_filter"`
	TimeLimit       *int     `json:"time_limit,omitempty"` // minutes per day
	AllowedGenres   []string `json:"allowed_genres"`
}

// SettingsPatch is a shallow partial update of UserSettings. ParentalControls,
// when present, replaces the whole sub-object; there is no deep merge.
type SettingsPatch struct {
	Theme            *string           `json:"theme,omitempty"`
	ReadingGoal      *int              `json:"reading_goal,omitempty"`
	Notifications    *bool             `json:"notifications,omitempty"`
	ParentalControls *ParentalControls `json:"parental_controls,omitempty"`
}

// README: User profile row.
package profile

import "errors"

var ErrNotFound = errors.New("profile not found")

// Profile holds the display name shown on the dashboard.
type Profile struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

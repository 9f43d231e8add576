package freebox

import (
	"encoding/json"
	"fmt"
)

// Domain is the integration identifier; it also names the shared state slot
// holding the session.
const Domain = "freebox"

// PermissionSettings gates changes to the device configuration.
const PermissionSettings = "settings"

// DefaultAPIVersion is used when Options.APIVersion is empty.
const DefaultAPIVersion = "v4"

// AppDescriptor identifies this application to the Freebox during
// authorization.
type AppDescriptor struct {
	AppID      string `json:"app_id" yaml:"app_id"`
	AppName    string `json:"app_name" yaml:"app_name"`
	AppVersion string `json:"app_version" yaml:"app_version"`
	DeviceName string `json:"device_name" yaml:"device_name"`
}

// Permissions is the set of rights granted to the current session.
type Permissions map[string]bool

// Has reports whether the named permission is granted.
func (p Permissions) Has(name string) bool {
	return p[name]
}

type WifiConfig struct {
	Enabled        bool   `json:"enabled"`
	MacFilterState string `json:"mac_filter_state,omitempty"`
}

type apiResponse struct {
	Success   bool            `json:"success"`
	Result    json.RawMessage `json:"result,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
	Msg       string          `json:"msg,omitempty"`
}

type authorizeResult struct {
	AppToken string `json:"app_token"`
	TrackID  int    `json:"track_id"`
}

type authorizeStatus struct {
	Status    string `json:"status"`
	Challenge string `json:"challenge"`
}

type loginResult struct {
	LoggedIn  bool   `json:"logged_in"`
	Challenge string `json:"challenge"`
}

type sessionRequest struct {
	AppID    string `json:"app_id"`
	Password string `json:"password"`
}

type sessionResult struct {
	SessionToken string      `json:"session_token"`
	Challenge    string      `json:"challenge"`
	Permissions  Permissions `json:"permissions"`
}

// APIError is returned when the Freebox answers with success=false.
type APIError struct {
	Path       string
	StatusCode int
	Code       string
	Msg        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("freebox %s: %s (%s, HTTP %d)", e.Path, e.Msg, e.Code, e.StatusCode)
}

func (e *APIError) authExpired() bool {
	return e.Code == "auth_required" || e.Code == "invalid_session"
}

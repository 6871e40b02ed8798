package model

// Statistics summarizes users and licenses for the admin dashboard.
type Statistics struct {
	Users    UserStatistics    `json:"users"`
	Licenses LicenseStatistics `json:"licenses"`
}

// UserStatistics counts users.
type UserStatistics struct {
	Total  int        `json:"total"`
	Active int        `json:"active"`
	Recent []UserView `json:"recent"`
}

// LicenseStatistics counts licenses.
type LicenseStatistics struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Expired      int `json:"expired"`
	ExpiringSoon int `json:"expiringSoon"`
}

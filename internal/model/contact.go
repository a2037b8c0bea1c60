package model

// ContactInfo holds the manufacturer's contact details.
type ContactInfo struct {
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Address      string       `json:"address"`
	Website      string       `json:"website"`
	WorkingHours WorkingHours `json:"workingHours"`
}

// WorkingHours describes office hours.
type WorkingHours struct {
	Weekdays string `json:"weekdays"`
	Weekend  string `json:"weekend"`
}

package compliance

import "time"

type Certification struct {
	ID         int        `json:"id"`
	BusinessID int        `json:"business_id"`
	Type       string     `json:"type"`
	Number     string     `json:"number"`
	IssueDate  *time.Time `json:"issue_date,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

type LabReport struct {
	ID         int       `json:"id"`
	BusinessID int       `json:"business_id"`
	ReportDate time.Time `json:"report_date"`
	TestType   string    `json:"test_type"`
	Result     string    `json:"result"`
	Notes      *string   `json:"notes,omitempty"`
	Status     string    `json:"status"`
	ReportURL  *string   `json:"report_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// HygieneRating rows are written by the external inspection process;
// this service only reads them.
type HygieneRating struct {
	ID             int       `json:"id"`
	BusinessID     int       `json:"business_id"`
	Rating         int       `json:"rating"`
	InspectionDate time.Time `json:"inspection_date"`
	InspectorName  *string   `json:"inspector_name,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Review rows are written by consumers; read-only here as well.
type Review struct {
	ID           int       `json:"id"`
	BusinessID   int       `json:"business_id"`
	ConsumerName *string   `json:"consumer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

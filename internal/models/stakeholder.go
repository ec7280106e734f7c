package models

// Row is one raw line of the stakeholder input table, before validation.
// Absent cells are empty strings.
type Row struct {
	Name        string
	Position    string
	Affiliation string
	Department  string
	Category    string
	Subcategory string
	Country     string
	City        string
	Status      string
}

// Record is one stakeholder that survived load-time validation. Every
// record has a non-empty country, a normalized status and resolved
// coordinates; optional text fields are empty strings when absent.
type Record struct {
	Name        string      `json:"name"`
	Position    string      `json:"position"`
	Affiliation string      `json:"affiliation"`
	Department  string      `json:"department"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	Country     string      `json:"country"`
	City        string      `json:"city"`
	RawStatus   string      `json:"raw_status"`
	Status      StatusLevel `json:"status"`
	Location    string      `json:"location"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
}

// Submission is the submit-stakeholder form payload.
type Submission struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Country    string `json:"country"`
	City       string `json:"city"`
	Status     string `json:"status"`
}

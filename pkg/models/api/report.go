package api

// ReportMessage is the JSON rendering of an assembled cost report.
type ReportMessage struct {
	Header string `json:"header"`
	Body   string `json:"body"`
}

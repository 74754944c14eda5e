package dto

type ImportLineError struct {
	Line    int               `json:"line"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ImportReportDTO struct {
	Imported int               `json:"imported"`
	Failed   int               `json:"failed"`
	Errors   []ImportLineError `json:"errors"`
}

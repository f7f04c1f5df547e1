package domain

// Document is a retrieved PubMed article payload.
type Document struct {
	Date       string `json:"date"`
	Title      string `json:"title"`
	Abstract   string `json:"abstract"`
	PMID       string `json:"pmid"`
	SourceFile string `json:"source_file"`
}

// NormalizeDate converts compact YYYYMMDD publication dates to YYYY-MM-DD.
// Any value that is not exactly 8 digits passes through unchanged, so the
// conversion is idempotent and tolerant of free-form dates like "unknown".
func NormalizeDate(v string) string {
	if len(v) != 8 {
		return v
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return v
		}
	}
	return v[:4] + "-" + v[4:6] + "-" + v[6:8]
}

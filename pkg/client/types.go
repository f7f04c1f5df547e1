package pubmedsearch

// Document is a retrieved PubMed article.
type Document struct {
	Date       string `json:"date"`
	Title      string `json:"title"`
	Abstract   string `json:"abstract"`
	PMID       string `json:"pmid"`
	SourceFile string `json:"source_file"`
}

// Result pairs a document with its similarity score.
type Result struct {
	ID       string   `json:"id"`
	Score    float64  `json:"score"`
	Document Document `json:"document"`
}

// SearchResponse is the full search response including timing diagnostics.
// Times are in seconds.
type SearchResponse struct {
	Query         string   `json:"query"`
	Results       []Result `json:"results"`
	TotalTime     float64  `json:"total_time"`
	EmbeddingTime float64  `json:"embedding_time"`
	SearchTime    float64  `json:"search_time"`
	ResultsCount  int      `json:"results_count"`
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status      string            `json:"status"`
	Checks      map[string]string `json:"checks"`
	VectorStore StoreEndpoint     `json:"vector_store"`
}

// StoreEndpoint identifies the retrieval store the service is configured against.
type StoreEndpoint struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Collection string `json:"collection"`
}

// ServiceInfo is the service identity reported by the root endpoint.
type ServiceInfo struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

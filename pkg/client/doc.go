// Package pubmedsearch provides a Go client for the PubMed semantic
// search HTTP API.
//
//	client := pubmedsearch.New("http://localhost:8000")
//	resp, err := client.Search(ctx, "aspirin heart disease",
//	    pubmedsearch.WithLimit(10),
//	)
//	if err != nil {
//	    // errors.Is(err, pubmedsearch.ErrInvalidInput) etc.
//	}
//	for _, r := range resp.Results {
//	    fmt.Println(r.Score, r.Document.Title)
//	}
package pubmedsearch

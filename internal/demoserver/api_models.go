package demoserver

import "encoding/json"

// PreviewRequest documents the body accepted by POST /api/preview. The
// handler reads the exact "url" key itself; see previewURL.
type PreviewRequest struct {
	URL string `json:"url" example:"https://example.com"`
}

// PreviewResponse wraps the canned preview fragment.
type PreviewResponse struct {
	Success bool   `json:"success" example:"true"`
	HTML    string `json:"html"`
	URL     string `json:"url" example:"https://example.com"`
}

// Record is one mock product row returned by a scrape.
type Record struct {
	Title string `json:"title" example:"Sample Product 1"`
	Price string `json:"price" example:"¥299.00"`
	Image string `json:"image"`
	Link  string `json:"link" example:"https://example.com/product1"`
}

// ScrapeResponse is returned by POST /api/scrape.
type ScrapeResponse struct {
	Success bool     `json:"success" example:"true"`
	Results []Record `json:"results"`
	Count   int      `json:"count" example:"3"`
}

// DownloadRequest is the body accepted by the download endpoints. Rows
// are arbitrary JSON objects kept raw so the first row's key order
// survives decoding; it decides the column order.
type DownloadRequest struct {
	Data     []json.RawMessage `json:"data" swaggertype:"array,object"`
	Filename string            `json:"filename" example:"scraping_results.csv"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"no data to download"`
}

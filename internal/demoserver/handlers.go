package demoserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/raysh454/scrapedemo/internal/logging"
)

// handlePreview godoc
// @Summary      Preview a page
// @Description  Returns a canned, sanitized HTML fragment standing in for the rendered page. Malformed bodies are treated as empty.
// @Tags         scrape
// @Accept       json
// @Produce      json
// @Param        body  body      PreviewRequest  false  "Page to preview"
// @Success      200   {object}  PreviewResponse
// @Router       /api/preview [post]
func (s *DemoServer) handlePreview(w http.ResponseWriter, r *http.Request) {
	url, err := previewURL(s.readBody(w, r))
	if err != nil {
		s.logger.Debug("malformed preview body, using empty request",
			logging.Field{Key: "error", Value: err},
		)
		url = ""
	}

	writeJSON(w, http.StatusOK, PreviewResponse{
		Success: true,
		HTML:    s.preview,
		URL:     url,
	})
}

var errInvalidUTF8 = errors.New("body is not valid UTF-8")

// previewURL extracts the exact "url" key from a JSON object body. Keys
// are matched case-sensitively, an absent key yields "", and anything
// that is not a UTF-8 JSON object with a string url is an error.
func previewURL(body []byte) (string, error) {
	if !utf8.Valid(body) {
		return "", errInvalidUTF8
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", err
	}

	raw, ok := fields["url"]
	if !ok {
		return "", nil
	}

	var url string
	if err := json.Unmarshal(raw, &url); err != nil {
		return "", err
	}
	return url, nil
}

// handleScrape godoc
// @Summary      Scrape selected elements
// @Description  Waits for the configured delay and returns three mock product records. The body is ignored.
// @Tags         scrape
// @Accept       json
// @Produce      json
// @Success      200  {object}  ScrapeResponse
// @Router       /api/scrape [post]
func (s *DemoServer) handleScrape(w http.ResponseWriter, r *http.Request) {
	if s.cfg.ScrapeDelay > 0 {
		timer := time.NewTimer(s.cfg.ScrapeDelay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-r.Context().Done():
			s.logger.Debug("client went away during scrape", logging.Field{Key: "error", Value: r.Context().Err()})
			return
		}
	}

	records := MockRecords()
	writeJSON(w, http.StatusOK, ScrapeResponse{
		Success: true,
		Results: records,
		Count:   len(records),
	})
}

// handleDownloadCSV godoc
// @Summary      Download rows as CSV
// @Description  Renders the posted rows as a UTF-8 CSV attachment. Columns follow the first row's keys.
// @Tags         export
// @Accept       json
// @Produce      text/csv
// @Param        body  body      DownloadRequest  true  "Rows to export"
// @Success      200   {file}    file
// @Failure      400   {object}  ErrorResponse
// @Router       /api/download/csv [post]
func (s *DemoServer) handleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	s.serveDownload(w, r, csvDownload)
}

// handleDownloadExcel godoc
// @Summary      Download rows as Excel
// @Description  Renders the posted rows as a single-sheet xlsx attachment. Columns follow the first row's keys.
// @Tags         export
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body      DownloadRequest  true  "Rows to export"
// @Success      200   {file}    file
// @Failure      400   {object}  ErrorResponse
// @Router       /api/download/excel [post]
func (s *DemoServer) handleDownloadExcel(w http.ResponseWriter, r *http.Request) {
	s.serveDownload(w, r, xlsxDownload)
}

// downloadFormat describes one attachment flavour of the download API.
type downloadFormat struct {
	name        string
	contentType string
	filename    string
	write       func(io.Writer, []json.RawMessage) error
}

var (
	csvDownload = downloadFormat{
		name:        "csv",
		contentType: "text/csv; charset=utf-8",
		filename:    defaultCSVFilename,
		write:       WriteCSV,
	}
	xlsxDownload = downloadFormat{
		name:        "xlsx",
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		filename:    defaultXLSXFilename,
		write:       WriteXLSX,
	}
)

func (s *DemoServer) serveDownload(w http.ResponseWriter, r *http.Request, format downloadFormat) {
	var req DownloadRequest
	if err := json.Unmarshal(s.readBody(w, r), &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	var buf bytes.Buffer
	if err := format.write(&buf, req.Data); err != nil {
		if !errors.Is(err, ErrNoRows) {
			s.logger.Warn("rendering download",
				logging.Field{Key: "format", Value: format.name},
				logging.Field{Key: "error", Value: err},
			)
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", format.contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, attachmentName(req.Filename, format.filename)))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// exactAPIPath sends API calls carrying a query string to the unknown
// API handler; the API paths match only verbatim.
func (s *DemoServer) exactAPIPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" || r.URL.ForceQuery {
			s.handleUnknownAPI(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *DemoServer) handleUnknownAPI(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "API not found", http.StatusNotFound)
}

func (s *DemoServer) handleUnsupportedMethod(w http.ResponseWriter, r *http.Request) {
	http.Error(w, fmt.Sprintf("Unsupported method (%s)", r.Method), http.StatusNotImplemented)
}

// readBody returns at most MaxBodyBytes of the request body. Read
// failures yield whatever arrived, which callers treat as malformed.
func (s *DemoServer) readBody(w http.ResponseWriter, r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		s.logger.Warn("reading request body", logging.Field{Key: "error", Value: err})
	}
	return body
}

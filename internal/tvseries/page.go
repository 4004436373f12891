package tvseries

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nao1215/drills/internal/model"
)

// Page is one decoded response of the series API.
type Page struct {
	// Data holds the records of this page. Empty when the field is absent.
	Data []model.RawSeries

	// TotalPages is the page count reported by the server.
	// It defaults to 1 when the field is absent.
	TotalPages int
}

// pageEnvelope keeps the fields raw so their shape can be checked one by one.
type pageEnvelope struct {
	Data       json.RawMessage `json:"data"`
	TotalPages json.RawMessage `json:"total_pages"` //nolint:tagliatelle // wire name of the API
}

// DecodePage decodes a response body.
//
// A body that is not a JSON object fails with ErrTransport. A JSON object
// whose data is not a list, whose total_pages is not an integer, or whose
// records cannot be decoded fails with ErrFormat.
func DecodePage(body []byte) (*Page, error) {
	var env pageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON object: %v", ErrTransport, err)
	}

	page := &Page{TotalPages: 1}

	if !isNull(env.Data) {
		var items []json.RawMessage
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, fmt.Errorf("%w: data is not a list", ErrFormat)
		}
		page.Data = make([]model.RawSeries, 0, len(items))
		for i, item := range items {
			var rec model.RawSeries
			if err := json.Unmarshal(item, &rec); err != nil {
				return nil, fmt.Errorf("%w: record %d: %v", ErrFormat, i, err)
			}
			page.Data = append(page.Data, rec)
		}
	}

	if !isNull(env.TotalPages) {
		var total int
		if err := json.Unmarshal(env.TotalPages, &total); err != nil {
			return nil, fmt.Errorf("%w: total_pages is not an integer: %s", ErrFormat, env.TotalPages)
		}
		page.TotalPages = total
	}

	return page, nil
}

// isNull reports whether a raw field is absent or JSON null.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

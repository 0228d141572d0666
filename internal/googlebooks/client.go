// Package googlebooks queries the Google Books volumes API to enrich
// scraped records with catalog metadata and pricing. Lookups that find
// nothing return no record rather than an error; only transport and
// decoding failures surface.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookfuse/internal/isbn"
	"bookfuse/internal/record"
)

// Client is a Google Books volumes API client.
type Client struct {
	Endpoint   string
	Delay      time.Duration
	httpClient *http.Client
}

// NewClient creates a client against the given volumes endpoint.
func NewClient(endpoint string, timeout, delay time.Duration) *Client {
	return &Client{
		Endpoint: endpoint,
		Delay:    delay,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// volumesResponse mirrors the slice of the API response we consume.
type volumesResponse struct {
	Items []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title               string   `json:"title"`
			Subtitle            string   `json:"subtitle"`
			Authors             []string `json:"authors"`
			Publisher           string   `json:"publisher"`
			PublishedDate       string   `json:"publishedDate"`
			Language            string   `json:"language"`
			Categories          []string `json:"categories"`
			IndustryIdentifiers []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			} `json:"industryIdentifiers"`
		} `json:"volumeInfo"`
		SaleInfo struct {
			ListPrice   price `json:"listPrice"`
			RetailPrice price `json:"retailPrice"`
		} `json:"saleInfo"`
	} `json:"items"`
}

type price struct {
	Amount       *float64 `json:"amount"`
	CurrencyCode string   `json:"currencyCode"`
}

// Search finds the best Google Books match for one scraped record: by best
// ISBN when one validates, else by title and author. Returns (nil, nil)
// when the record is unsearchable or the API finds nothing.
func (c *Client) Search(ctx context.Context, item record.GoodreadsRecord) (*record.GoogleBooksRecord, error) {
	q := buildQuery(item)
	if q == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("maxResults", "1")
	params.Set("printType", "books")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build volumes request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query volumes API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("Volumes API returned non-OK status", "status", resp.StatusCode, "query", q)
		return nil, nil
	}

	var vr volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("failed to decode volumes response: %w", err)
	}
	if len(vr.Items) == 0 {
		return nil, nil
	}

	vol := vr.Items[0]
	info := vol.VolumeInfo

	var isbn10G, isbn13G string
	for _, ident := range info.IndustryIdentifiers {
		switch ident.Type {
		case "ISBN_13":
			isbn13G = isbn.Normalize(ident.Identifier)
		case "ISBN_10":
			isbn10G = isbn.Normalize(ident.Identifier)
		}
	}

	// Prefer the identifier the API reports over the one we searched with.
	best13, _ := isbn.PickBest(item.ISBN13, item.ISBN10)
	if isbn13G == "" {
		isbn13G = best13
	}

	amount, currency := pickPrice(vol.SaleInfo.ListPrice, vol.SaleInfo.RetailPrice)

	return &record.GoogleBooksRecord{
		GBID:          vol.ID,
		Title:         info.Title,
		Subtitle:      info.Subtitle,
		Authors:       joinList(info.Authors),
		Publisher:     info.Publisher,
		PubDate:       info.PublishedDate,
		Language:      info.Language,
		Categories:    joinList(info.Categories),
		ISBN13:        isbn13G,
		ISBN10:        isbn10G,
		PriceAmount:   amount,
		PriceCurrency: currency,
	}, nil
}

// EnrichAll searches every record, pausing between requests to stay polite
// with the API. Lookups that find nothing are skipped silently.
func (c *Client) EnrichAll(ctx context.Context, items []record.GoodreadsRecord) ([]record.GoogleBooksRecord, error) {
	var out []record.GoogleBooksRecord
	for i, item := range items {
		if i > 0 && c.Delay > 0 {
			select {
			case <-time.After(c.Delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		found, err := c.Search(ctx, item)
		if err != nil {
			return nil, err
		}
		if found == nil {
			slog.Debug("No volumes match", "title", item.Title)
			continue
		}
		out = append(out, *found)

		if (i+1)%25 == 0 {
			slog.Info("Enrichment progress", "done", i+1, "total", len(items))
		}
	}
	return out, nil
}

// buildQuery prefers an isbn: query, then intitle/inauthor, then intitle.
func buildQuery(item record.GoodreadsRecord) string {
	if best13, _ := isbn.PickBest(item.ISBN13, item.ISBN10); best13 != "" {
		return "isbn:" + best13
	}
	title := strings.TrimSpace(item.Title)
	author := strings.TrimSpace(item.Author)
	switch {
	case title != "" && author != "":
		return fmt.Sprintf("intitle:%s inauthor:%s", strconv.Quote(title), strconv.Quote(author))
	case title != "":
		return "intitle:" + strconv.Quote(title)
	}
	return ""
}

func pickPrice(list, retail price) (amount, currency string) {
	p := list
	if p.Amount == nil {
		p = retail
	}
	if p.Amount != nil {
		amount = strconv.FormatFloat(*p.Amount, 'f', -1, 64)
	}
	currency = list.CurrencyCode
	if currency == "" {
		currency = retail.CurrencyCode
	}
	return amount, currency
}

func joinList(xs []string) string {
	var cleaned []string
	seen := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		cleaned = append(cleaned, x)
	}
	return strings.Join(cleaned, ";")
}

package sources

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/career-compass/internal/types"
)

// Selectors maps board-specific CSS selectors to posting fields. Job is the
// per-posting container; the rest are resolved within it.
type Selectors struct {
	Job      string `json:"job"`
	Title    string `json:"title"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	Link     string `json:"link,omitempty"`
	Tags     string `json:"tags,omitempty"`
}

// HTMLBoard scrapes a server-rendered job board page with CSS selectors.
// JavaScript-rendered boards should use BrowserBoard instead.
type HTMLBoard struct {
	client    *http.Client
	name      string
	url       string
	selectors Selectors
}

// NewHTMLBoard creates an HTML board source.
func NewHTMLBoard(name, url string, selectors Selectors) *HTMLBoard {
	return &HTMLBoard{client: newClient(), name: name, url: url, selectors: selectors}
}

// Name implements Source.
func (b *HTMLBoard) Name() string { return b.name }

// Fetch implements Source.
func (b *HTMLBoard) Fetch(ctx context.Context) ([]types.JobPosting, error) {
	req, err := boardRequest(ctx, b.url)
	if err != nil {
		return nil, &Error{Source: b.name, Message: "building request", Cause: err}
	}
	req.Header.Set("Accept", "text/html")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &Error{Source: b.name, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Source: b.name, Message: "unexpected status " + resp.Status}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &Error{Source: b.name, Message: "parsing HTML", Cause: err}
	}

	return b.parse(doc), nil
}

func (b *HTMLBoard) parse(doc *goquery.Document) []types.JobPosting {
	var postings []types.JobPosting
	doc.Find(b.selectors.Job).Each(func(_ int, s *goquery.Selection) {
		raw := RawJob{
			Title:    text(s, b.selectors.Title),
			Company:  text(s, b.selectors.Company),
			Location: text(s, b.selectors.Location),
		}
		if b.selectors.Link != "" {
			raw.URL, _ = s.Find(b.selectors.Link).First().Attr("href")
		}
		if b.selectors.Tags != "" {
			s.Find(b.selectors.Tags).Each(func(_ int, tag *goquery.Selection) {
				if t := strings.TrimSpace(tag.Text()); t != "" {
					raw.Tags = append(raw.Tags, t)
				}
			})
		}
		if raw.Title == "" {
			return // skip container matches without a title
		}
		postings = append(postings, Normalize(raw, b.name))
	})
	return postings
}

func text(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.TrimSpace(s.Find(selector).First().Text())
}

package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Czerw0/JobFinder/internal/domain/job"
	"github.com/Czerw0/JobFinder/internal/repository"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RemoteOK ingests listings from the RemoteOK public API. The endpoint
// returns a JSON array whose first element is a legal notice, not an offer.
type RemoteOK struct {
	client *resty.Client
	jobs   repository.JobRepository
	log    *zap.Logger
	apiURL string
}

type Summary struct {
	Fetched int
	Created int
	Updated int
	Skipped int
}

func NewRemoteOK(apiURL, userAgent string, jobs repository.JobRepository, log *zap.Logger) *RemoteOK {
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second)

	return &RemoteOK{client: client, jobs: jobs, log: log, apiURL: apiURL}
}

type apiOffer struct {
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	URL         string    `json:"url"`
	Tags        []job.Tag `json:"tags"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	SalaryMin   int       `json:"salary_min"`
	SalaryMax   int       `json:"salary_max"`
}

// Scrape fetches the API feed and upserts every offer keyed by its URL.
// Sponsored entries without a URL are skipped; a malformed offer skips that
// offer only.
func (s *RemoteOK) Scrape(ctx context.Context) (Summary, error) {
	var sum Summary

	resp, err := s.client.R().SetContext(ctx).Get(s.apiURL)
	if err != nil {
		return sum, fmt.Errorf("fetching %s: %w", s.apiURL, err)
	}
	if resp.IsError() {
		return sum, fmt.Errorf("fetching %s: status %d", s.apiURL, resp.StatusCode())
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return sum, fmt.Errorf("decoding feed: %w", err)
	}
	if len(raw) <= 1 {
		s.log.Warn("feed returned no offers")
		return sum, nil
	}

	// raw[0] is the legal notice.
	for _, msg := range raw[1:] {
		var offer apiOffer
		if err := json.Unmarshal(msg, &offer); err != nil {
			sum.Skipped++
			continue
		}
		if strings.TrimSpace(offer.URL) == "" {
			sum.Skipped++
			continue
		}
		sum.Fetched++

		created, err := s.jobs.Upsert(ctx, toUpsert(offer))
		if err != nil {
			s.log.Warn("upsert failed", zap.String("url", offer.URL), zap.Error(err))
			sum.Skipped++
			continue
		}
		if created {
			sum.Created++
		} else {
			sum.Updated++
		}
	}

	s.log.Info("scrape finished",
		zap.Int("fetched", sum.Fetched),
		zap.Int("created", sum.Created),
		zap.Int("updated", sum.Updated),
		zap.Int("skipped", sum.Skipped),
	)
	return sum, nil
}

func toUpsert(o apiOffer) repository.JobUpsert {
	location := strings.TrimSpace(o.Location)
	if location == "" {
		location = "Remote"
	}

	up := repository.JobUpsert{
		Title:      strings.TrimSpace(o.Position),
		Company:    strings.TrimSpace(o.Company),
		Location:   &location,
		Tags:       o.Tags,
		JobURL:     strings.TrimSpace(o.URL),
		DatePosted: parseDate(o.Date),
	}

	salary := formatSalary(o.SalaryMin, o.SalaryMax)
	up.Salary = &salary

	if text := htmlToText(o.Description); text != "" {
		up.Description = &text
	}
	return up
}

// htmlToText strips the markup RemoteOK ships in descriptions. Unparseable
// input falls back to the raw string rather than losing the description.
func htmlToText(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return strings.TrimSpace(doc.Text())
}

func formatSalary(min, max int) string {
	if min <= 0 || max <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%s - $%s", groupThousands(min), groupThousands(max))
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// parseDate tolerates the feed's timestamp variants; anything else is a nil
// posted date, never an error.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

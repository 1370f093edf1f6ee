package dto

import "github.com/Czerw0/JobFinder/internal/scraper"

type ScrapeSummaryResponse struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

func FromScrapeSummary(s scraper.Summary) ScrapeSummaryResponse {
	return ScrapeSummaryResponse{
		Fetched: s.Fetched,
		Created: s.Created,
		Updated: s.Updated,
		Skipped: s.Skipped,
	}
}

// ABOUTME: Option-list projection for select controls
// ABOUTME: Output order always matches input order; no dedup is performed

package bibles

import "scripture-app-api/core/domain"

// AsOptions projects bibles into value/label pairs for select lists,
// preserving input order.
func AsOptions(records []domain.Bible) []domain.Option {
	options := make([]domain.Option, 0, len(records))
	for _, b := range records {
		options = append(options, domain.Option{
			Value:    b.ID,
			ItemText: b.Name,
		})
	}
	return options
}

// LanguageOptions projects upstream language records into value/label
// pairs, preserving input order.
func LanguageOptions(records []APILanguage) []domain.Option {
	options := make([]domain.Option, 0, len(records))
	for _, l := range records {
		options = append(options, domain.Option{
			Value:    l.ISO,
			ItemText: l.Name,
		})
	}
	return options
}

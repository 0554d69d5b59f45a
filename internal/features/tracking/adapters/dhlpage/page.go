// Package dhlpage turns a DHL parcel tracking page into a domain.TrackingStatus.
//
// The page embeds its state as a JSON string literal passed to JSON.parse. Parsing is
// split into two stages so either can be replaced if DHL changes the embedding:
// ExtractJSON pulls the literal out of the HTML, Decode maps the JSON onto the domain.
// Everything here is pure and safe for concurrent use.
package dhlpage

import "dhl-tracker/internal/features/tracking/domain"

// ParseTrackingPage runs ExtractJSON then Decode. Failures are returned as *PageError.
func ParseTrackingPage(html string) (*domain.TrackingStatus, error) {
	jsonText, err := ExtractJSON(html)
	if err != nil {
		return nil, &PageError{Stage: StageExtract, Err: err}
	}

	status, err := Decode(jsonText)
	if err != nil {
		return nil, &PageError{Stage: StageDecode, Err: err}
	}

	return status, nil
}

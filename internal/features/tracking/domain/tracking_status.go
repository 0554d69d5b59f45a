package domain

// TrackingStatus is the root of a DHL tracking lookup.
type TrackingStatus struct {
	// Items holds one entry per tracking code returned by DHL. A prefix query may return several.
	Items []TrackingItem `json:"items"`
}

// TrackingItem represents a single shipment in a tracking lookup.
type TrackingItem struct {
	// ID is the tracking code. It is opaque text, usually digits but not always.
	ID string `json:"id"`
	// HasCompleteDetails mirrors DHL's completeness flag for the item.
	HasCompleteDetails bool `json:"has_complete_details"`
	// Details holds the shipment data. Nil when DHL sent no details block.
	Details *ItemDetails `json:"details"`
	// NotFound is set only when DHL has no shipment data for the code.
	NotFound *NotFoundInfo `json:"not_found"`
}

// NotFoundInfo explains why DHL could not find a shipment. Both flags may be false.
type NotFoundInfo struct {
	// NoDataAvailable is true when DHL has no data at all for the code.
	NoDataAvailable bool `json:"no_data_available"`
	// NotADHLPackage is true when the code does not look like a DHL parcel code.
	NotADHLPackage bool `json:"not_a_dhl_package"`
}

// ItemDetails holds the shipment data of a found item.
type ItemDetails struct {
	// DestinationCountry is nil for very early-stage shipments.
	DestinationCountry *string `json:"destination_country"`
	// History is the shipment's progress.
	History History `json:"history"`
}

// History is the chronological progress of a shipment.
type History struct {
	// Events is ordered oldest first. Nil means DHL sent no events field,
	// which is distinct from an empty list.
	Events []HistoryEvent `json:"events"`
	// CurrentStatus is DHL's free-text summary, if any.
	CurrentStatus *string `json:"current_status"`
	// Steps is DHL's progress counter. It is not derived from Events.
	Steps uint64 `json:"steps"`
}

// HistoryEvent is a single checkpoint in a shipment's history.
type HistoryEvent struct {
	// Date is the upstream timestamp, passed through verbatim.
	Date string `json:"date"`
	// Status is the event description in the requested language.
	Status string `json:"status"`
	// ReturnShipment flags events that belong to a return.
	ReturnShipment bool `json:"return_shipment"`
	// Location is nil when the event carries no place.
	Location *string `json:"location"`
}

// Found reports whether DHL returned shipment data for the item.
func (i TrackingItem) Found() bool {
	return i.NotFound == nil
}

// Find returns the first item with the given tracking code.
func (s *TrackingStatus) Find(code string) (*TrackingItem, bool) {
	for idx := range s.Items {
		if s.Items[idx].ID == code {
			return &s.Items[idx], true
		}
	}
	return nil, false
}

// LatestEvent returns the most recent event, or nil if there is none.
func (h History) LatestEvent() *HistoryEvent {
	if len(h.Events) == 0 {
		return nil
	}
	return &h.Events[len(h.Events)-1]
}

package dhlpage

import (
	"encoding/json"
	"fmt"

	"dhl-tracker/internal/features/tracking/domain"
)

// Decode maps the initialState JSON of a DHL tracking page to a TrackingStatus.
// Unknown fields are ignored. Optional fields that are missing or null stay nil.
func Decode(jsonText string) (*domain.TrackingStatus, error) {
	var root json.RawMessage
	if err := json.Unmarshal([]byte(jsonText), &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	doc, err := asObject(root, "")
	if err != nil {
		return nil, err
	}

	rawItems, err := doc.requiredArray("sendungen")
	if err != nil {
		return nil, err
	}

	status := &domain.TrackingStatus{
		Items: make([]domain.TrackingItem, 0, len(rawItems)),
	}
	for i, raw := range rawItems {
		item, err := decodeItem(raw, indexPath(doc.child("sendungen"), i))
		if err != nil {
			return nil, err
		}
		status.Items = append(status.Items, item)
	}

	return status, nil
}

func decodeItem(raw json.RawMessage, path string) (domain.TrackingItem, error) {
	var item domain.TrackingItem

	obj, err := asObject(raw, path)
	if err != nil {
		return item, err
	}

	if item.ID, err = obj.requiredText("id"); err != nil {
		return item, err
	}
	if item.HasCompleteDetails, err = obj.requiredBool("hasCompleteDetails"); err != nil {
		return item, err
	}

	details, err := obj.optionalObject("sendungsdetails")
	if err != nil {
		return item, err
	}
	if details != nil {
		if item.Details, err = decodeDetails(*details); err != nil {
			return item, err
		}
	}

	notFound, err := obj.optionalObject("sendungNichtGefunden")
	if err != nil {
		return item, err
	}
	if notFound != nil {
		if item.NotFound, err = decodeNotFound(*notFound); err != nil {
			return item, err
		}
	}

	return item, nil
}

func decodeNotFound(obj object) (*domain.NotFoundInfo, error) {
	noData, err := obj.requiredBool("keineDatenVerfuegbar")
	if err != nil {
		return nil, err
	}
	notDHL, err := obj.requiredBool("keineDhlPaketSendung")
	if err != nil {
		return nil, err
	}
	return &domain.NotFoundInfo{
		NoDataAvailable: noData,
		NotADHLPackage:  notDHL,
	}, nil
}

func decodeDetails(obj object) (*domain.ItemDetails, error) {
	country, err := obj.optionalString("zielland")
	if err != nil {
		return nil, err
	}

	verlauf, err := obj.requiredObject("sendungsverlauf")
	if err != nil {
		return nil, err
	}
	history, err := decodeHistory(verlauf)
	if err != nil {
		return nil, err
	}

	return &domain.ItemDetails{
		DestinationCountry: country,
		History:            history,
	}, nil
}

func decodeHistory(obj object) (domain.History, error) {
	var history domain.History
	var err error

	if history.CurrentStatus, err = obj.optionalString("aktuellerStatus"); err != nil {
		return history, err
	}
	if history.Steps, err = obj.requiredUint("fortschritt"); err != nil {
		return history, err
	}

	rawEvents, ok, err := obj.optionalArray("events")
	if err != nil {
		return history, err
	}
	if !ok {
		return history, nil
	}

	history.Events = make([]domain.HistoryEvent, 0, len(rawEvents))
	for i, raw := range rawEvents {
		event, err := decodeEvent(raw, indexPath(obj.child("events"), i))
		if err != nil {
			return history, err
		}
		history.Events = append(history.Events, event)
	}

	return history, nil
}

func decodeEvent(raw json.RawMessage, path string) (domain.HistoryEvent, error) {
	var event domain.HistoryEvent

	obj, err := asObject(raw, path)
	if err != nil {
		return event, err
	}

	if event.Date, err = obj.requiredString("datum"); err != nil {
		return event, err
	}
	if event.Status, err = obj.requiredString("status"); err != nil {
		return event, err
	}
	if event.ReturnShipment, err = obj.requiredBool("ruecksendung"); err != nil {
		return event, err
	}
	if event.Location, err = obj.optionalString("ort"); err != nil {
		return event, err
	}

	return event, nil
}

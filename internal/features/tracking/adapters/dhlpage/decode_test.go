package dhlpage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalItem = `{"sendungen":[{"id":"1","hasCompleteDetails":true,` +
	`"sendungsdetails":{"sendungsverlauf":{"fortschritt":2%s}}}]}`

// TestDecode_Fixture verifies the captured 523361125086 payload end to end.
func TestDecode_Fixture(t *testing.T) {
	jsonText, err := ExtractJSON(readFixture(t, "523361125086.html"))
	require.NoError(t, err)

	status, err := Decode(jsonText)
	require.NoError(t, err)
	require.Len(t, status.Items, 1)

	item := status.Items[0]
	assert.Equal(t, "523361125086", item.ID)
	assert.True(t, item.HasCompleteDetails)
	assert.Nil(t, item.NotFound)
	assert.True(t, item.Found())

	require.NotNil(t, item.Details)
	require.NotNil(t, item.Details.DestinationCountry)
	assert.Equal(t, "Germany", *item.Details.DestinationCountry)

	history := item.Details.History
	assert.Equal(t, uint64(5), history.Steps)
	require.NotNil(t, history.CurrentStatus)
	assert.Equal(t, "Shipment sent directly from parcel center to business customer", *history.CurrentStatus)
	require.Len(t, history.Events, 5)

	first := history.Events[0]
	assert.False(t, first.ReturnShipment)
	assert.Equal(t, "2020-07-22T16:39:00+02:00", first.Date)
	assert.Equal(t, "The shipment has been taken from the PACKSTATION for onward transportation", first.Status)
	assert.Nil(t, first.Location)

	second := history.Events[1]
	require.NotNil(t, second.Location)
	assert.Equal(t, "Hannover", *second.Location)
}

// TestDecode_NotFoundFixture verifies that not-found items carry no details.
func TestDecode_NotFoundFixture(t *testing.T) {
	jsonText, err := ExtractJSON(readFixture(t, "not_found.html"))
	require.NoError(t, err)

	status, err := Decode(jsonText)
	require.NoError(t, err)
	require.Len(t, status.Items, 1)

	item := status.Items[0]
	assert.Equal(t, "00340434161094042557", item.ID)
	assert.False(t, item.Found())
	require.NotNil(t, item.NotFound)
	assert.True(t, item.NotFound.NoDataAvailable)
	assert.False(t, item.NotFound.NotADHLPackage)
	assert.Nil(t, item.Details)
}

// TestDecode_EventsAbsentVersusEmpty verifies that a missing events field stays nil.
func TestDecode_EventsAbsentVersusEmpty(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		status, err := Decode(fmt.Sprintf(minimalItem, ""))
		require.NoError(t, err)
		assert.Nil(t, status.Items[0].Details.History.Events)
	})

	t.Run("Null", func(t *testing.T) {
		status, err := Decode(fmt.Sprintf(minimalItem, `,"events":null`))
		require.NoError(t, err)
		assert.Nil(t, status.Items[0].Details.History.Events)
	})

	t.Run("Empty", func(t *testing.T) {
		status, err := Decode(fmt.Sprintf(minimalItem, `,"events":[]`))
		require.NoError(t, err)
		assert.NotNil(t, status.Items[0].Details.History.Events)
		assert.Empty(t, status.Items[0].Details.History.Events)
	})
}

// TestDecode_OptionalFieldsAbsent verifies that optional fields decode to nil, not defaults.
func TestDecode_OptionalFieldsAbsent(t *testing.T) {
	status, err := Decode(fmt.Sprintf(minimalItem, `,"events":[{"datum":"d","status":"s","ruecksendung":true}]`))
	require.NoError(t, err)

	item := status.Items[0]
	assert.Nil(t, item.NotFound)
	assert.Nil(t, item.Details.DestinationCountry)
	assert.Nil(t, item.Details.History.CurrentStatus)
	assert.Equal(t, uint64(2), item.Details.History.Steps)
	require.Len(t, item.Details.History.Events, 1)
	assert.True(t, item.Details.History.Events[0].ReturnShipment)
	assert.Nil(t, item.Details.History.Events[0].Location)
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	status, err := Decode(`{"sendungen":[{"id":"1","hasCompleteDetails":false,"neuesFeld":{"x":[1,2]}}],"meta":42}`)

	require.NoError(t, err)
	require.Len(t, status.Items, 1)
	assert.Nil(t, status.Items[0].Details)
}

func TestDecode_NumericID(t *testing.T) {
	status, err := Decode(`{"sendungen":[{"id":523361125086,"hasCompleteDetails":false}]}`)

	require.NoError(t, err)
	assert.Equal(t, "523361125086", status.Items[0].ID)
}

func TestDecode_MultipleItemsKeepOrder(t *testing.T) {
	status, err := Decode(`{"sendungen":[{"id":"B","hasCompleteDetails":false},{"id":"A","hasCompleteDetails":true}]}`)

	require.NoError(t, err)
	require.Len(t, status.Items, 2)
	assert.Equal(t, "B", status.Items[0].ID)
	assert.Equal(t, "A", status.Items[1].ID)
}

func TestDecode_EmptyItems(t *testing.T) {
	status, err := Decode(`{"sendungen":[]}`)

	require.NoError(t, err)
	assert.NotNil(t, status.Items)
	assert.Empty(t, status.Items)
}

func TestDecode_InvalidJSON(t *testing.T) {
	for _, input := range []string{``, `{`, `{"sendungen":[}`, `not json`} {
		status, err := Decode(input)

		assert.Nil(t, status)
		assert.ErrorIs(t, err, ErrInvalidJSON, "input %q", input)
		assert.NotErrorIs(t, err, ErrSchemaViolation)
	}
}

func TestDecode_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		json string
		path string
	}{
		{
			name: "Root is not an object",
			json: `[1,2]`,
			path: "",
		},
		{
			name: "Root is null",
			json: `null`,
			path: "",
		},
		{
			name: "Missing items",
			json: `{}`,
			path: "sendungen",
		},
		{
			name: "Items null",
			json: `{"sendungen":null}`,
			path: "sendungen",
		},
		{
			name: "Items wrong type",
			json: `{"sendungen":{}}`,
			path: "sendungen",
		},
		{
			name: "Item is not an object",
			json: `{"sendungen":["x"]}`,
			path: "sendungen[0]",
		},
		{
			name: "Missing id",
			json: `{"sendungen":[{"hasCompleteDetails":true}]}`,
			path: "sendungen[0].id",
		},
		{
			name: "Id wrong type",
			json: `{"sendungen":[{"id":true,"hasCompleteDetails":true}]}`,
			path: "sendungen[0].id",
		},
		{
			name: "Missing completeness flag on second item",
			json: `{"sendungen":[{"id":"1","hasCompleteDetails":true},{"id":"2"}]}`,
			path: "sendungen[1].hasCompleteDetails",
		},
		{
			name: "Completeness flag wrong type",
			json: `{"sendungen":[{"id":"1","hasCompleteDetails":"yes"}]}`,
			path: "sendungen[0].hasCompleteDetails",
		},
		{
			name: "Details without history",
			json: `{"sendungen":[{"id":"1","hasCompleteDetails":true,"sendungsdetails":{"zielland":"Germany"}}]}`,
			path: "sendungen[0].sendungsdetails.sendungsverlauf",
		},
		{
			name: "Missing steps",
			json: `{"sendungen":[{"id":"1","hasCompleteDetails":true,"sendungsdetails":{"sendungsverlauf":{}}}]}`,
			path: "sendungen[0].sendungsdetails.sendungsverlauf.fortschritt",
		},
		{
			name: "Negative steps",
			json: `{"sendungen":[{"id":"1","hasCompleteDetails":true,"sendungsdetails":{"sendungsverlauf":{"fortschritt":-1}}}]}`,
			path: "sendungen[0].sendungsdetails.sendungsverlauf.fortschritt",
		},
		{
			name: "Country wrong type",
			json: `{"sendungen":[{"id":"1","hasCompleteDetails":true,"sendungsdetails":{"zielland":49,"sendungsverlauf":{"fortschritt":1}}}]}`,
			path: "sendungen[0].sendungsdetails.zielland",
		},
		{
			name: "Events wrong type",
			json: fmt.Sprintf(minimalItem, `,"events":"none"`),
			path: "sendungen[0].sendungsdetails.sendungsverlauf.events",
		},
		{
			name: "Event missing date",
			json: fmt.Sprintf(minimalItem, `,"events":[{"datum":"d","status":"s","ruecksendung":false},{"status":"s","ruecksendung":false}]`),
			path: "sendungen[0].sendungsdetails.sendungsverlauf.events[1].datum",
		},
		{
			name: "Event location wrong type",
			json: fmt.Sprintf(minimalItem, `,"events":[{"datum":"d","status":"s","ruecksendung":false,"ort":["Bonn"]}]`),
			path: "sendungen[0].sendungsdetails.sendungsverlauf.events[0].ort",
		},
		{
			name: "Not-found block missing flag",
			json: `{"sendungen":[{"id":"1","hasCompleteDetails":false,"sendungNichtGefunden":{"keineDatenVerfuegbar":true}}]}`,
			path: "sendungen[0].sendungNichtGefunden.keineDhlPaketSendung",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := Decode(tt.json)

			assert.Nil(t, status)
			require.ErrorIs(t, err, ErrSchemaViolation)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.path, schemaErr.Path)
		})
	}
}

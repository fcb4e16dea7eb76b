package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"string", `"Jamgora"`, "Jamgora", false},
		{"empty string", `""`, "", false},
		{"escaped", `"a\"b"`, `a"b`, false},
		{"integer", `12`, "12", false},
		{"float", `12.50`, "12.50", false},
		{"bool", `true`, "true", false},
		{"object", `{}`, "", true},
		{"array", `["12"]`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				F *Text `json:"f"`
			}
			err := json.Unmarshal([]byte(`{"f": `+tt.input+`}`), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, v.F)
			assert.Equal(t, tt.want, v.F.String())
		})
	}
}

func TestSubmitRequestMissingVsEmpty(t *testing.T) {
	var req SubmitRequest
	err := json.Unmarshal([]byte(`{"division": "", "mouzaData": [{"sheetNumber": 7}]}`), &req)
	require.NoError(t, err)

	require.NotNil(t, req.Division)
	assert.Nil(t, req.District)
	assert.Equal(t, "", req.Location().District, "missing fields read as empty")

	require.Len(t, req.MouzaData, 1)
	assert.Nil(t, req.MouzaData[0].MouzaName)
	assert.Equal(t, "7", req.MouzaData[0].Entry().SheetNumber)
}

func TestLocationWithEntriesJSON(t *testing.T) {
	loc := LocationWithEntries{
		LocationRecord: LocationRecord{ID: 3, Division: "Dhaka", District: "Dhaka", Upazila: "Savar", Union: "Ashulia"},
		MouzaData:      []SurveySheetEntry{{ID: 9, FormDataID: 3, MouzaName: "Jamgora", SurveyType: "RS", SheetNumber: "12"}},
	}

	raw, err := json.Marshal(loc)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 3, "division": "Dhaka", "district": "Dhaka", "upazila": "Savar", "union": "Ashulia",
		"mouzaData": [{"id": 9, "form_data_id": 3, "mouzaName": "Jamgora", "surveyType": "RS", "sheetNumber": "12"}]
	}`, string(raw))
}

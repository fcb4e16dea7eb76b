package models

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

// Response messages
const (
	MessageInserted = "Data inserted successfully"
)

// Domain types

// LocationRecord is one row of form_data.
type LocationRecord struct {
	ID       int64  `json:"id"`
	Division string `json:"division"`
	District string `json:"district"`
	Upazila  string `json:"upazila"`
	Union    string `json:"union"`
}

// SurveySheetEntry is one row of mouza_info, owned by exactly one LocationRecord.
type SurveySheetEntry struct {
	ID          int64  `json:"id"`
	FormDataID  int64  `json:"form_data_id"`
	MouzaName   string `json:"mouzaName"`
	SurveyType  string `json:"surveyType"`
	SheetNumber string `json:"sheetNumber"`
}

type LocationWithEntries struct {
	LocationRecord
	MouzaData []SurveySheetEntry `json:"mouzaData"`
}

// Request types

// Text is a free-text field that also accepts JSON numbers and booleans,
// keeping their literal spelling (sheet numbers often arrive as 12, not "12").
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty text value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		return errors.New("expected a text value")
	default:
		*t = Text(data)
	}
	return nil
}

func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

// Pointer fields distinguish a missing key from an empty string.
type SubmitRequest struct {
	Division  *Text        `json:"division" validate:"required"`
	District  *Text        `json:"district" validate:"required"`
	Upazila   *Text        `json:"upazila" validate:"required"`
	Union     *Text        `json:"union" validate:"required"`
	MouzaData []MouzaInput `json:"mouzaData" validate:"required,dive"`
}

type MouzaInput struct {
	MouzaName   *Text `json:"mouzaName" validate:"required"`
	SurveyType  *Text `json:"surveyType" validate:"required"`
	SheetNumber *Text `json:"sheetNumber" validate:"required"`
}

// Location returns the parent fields of the submission.
func (r SubmitRequest) Location() LocationRecord {
	return LocationRecord{
		Division: r.Division.String(),
		District: r.District.String(),
		Upazila:  r.Upazila.String(),
		Union:    r.Union.String(),
	}
}

func (m MouzaInput) Entry() SurveySheetEntry {
	return SurveySheetEntry{
		MouzaName:   m.MouzaName.String(),
		SurveyType:  m.SurveyType.String(),
		SheetNumber: m.SheetNumber.String(),
	}
}

// Response types

type SubmitResponse struct {
	Message string              `json:"message"`
	Data    LocationWithEntries `json:"data"`
}

type ListResponse struct {
	Data []LocationWithEntries `json:"data"`
}

type LocationResponse struct {
	Data LocationWithEntries `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

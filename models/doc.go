// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response and domain types.

# Domain Types

  - LocationRecord: a form_data row (division, district, upazila, union)
  - SurveySheetEntry: a mouza_info row linked to its location by FormDataID
  - LocationWithEntries: a location merged with its mouzaData

JSON field names follow the table columns, so mouza entries use camelCase
(mouzaName, surveyType, sheetNumber) while the foreign key is form_data_id.

# Request Types

SubmitRequest uses pointer fields so a missing key can be told apart from an
empty string. Text accepts JSON strings, numbers and booleans:

	{"sheetNumber": 12}   → "12"
	{"sheetNumber": "12"} → "12"

# Response Types

Every error body is an ErrorResponse:

	{"message": "Error fetching form data", "error": "..."}
*/
package models

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielhkuo/mouza-form/models"
)

// Queries issues the parameterized statements for form_data and mouza_info.
// Obtain one from Store.Queries or inside Store.RunInTx.
type Queries struct {
	q     querier
	store *Store
}

// InsertLocation stores a form_data row and returns its generated id.
func (q *Queries) InsertLocation(ctx context.Context, loc models.LocationRecord) (int64, error) {
	if err := q.store.available(); err != nil {
		return 0, err
	}

	var id int64
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO form_data (division, district, upazila, "union")
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, loc.Division, loc.District, loc.Upazila, loc.Union).Scan(&id)
	if err != nil {
		return 0, writeError("insert form_data", err)
	}
	return id, nil
}

// InsertSurveyEntry stores a mouza_info row under parentID. The foreign key
// rejects a parentID that does not exist.
func (q *Queries) InsertSurveyEntry(ctx context.Context, parentID int64, e models.SurveySheetEntry) (int64, error) {
	if err := q.store.available(); err != nil {
		return 0, err
	}

	var id int64
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO mouza_info (form_data_id, "mouzaName", "surveyType", "sheetNumber")
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, parentID, e.MouzaName, e.SurveyType, e.SheetNumber).Scan(&id)
	if err != nil {
		return 0, writeError("insert mouza_info", err)
	}
	return id, nil
}

// COALESCE keeps rows written with NULL columns readable.
const locationColumns = `id, COALESCE(division, ''), COALESCE(district, ''), COALESCE(upazila, ''), COALESCE("union", '')`

func (q *Queries) ListLocations(ctx context.Context) ([]models.LocationRecord, error) {
	if err := q.store.available(); err != nil {
		return nil, err
	}

	rows, err := q.q.QueryContext(ctx, `SELECT `+locationColumns+` FROM form_data ORDER BY id`)
	if err != nil {
		return nil, readError("select form_data", err)
	}
	defer rows.Close()

	locations := []models.LocationRecord{}
	for rows.Next() {
		var loc models.LocationRecord
		if err := rows.Scan(&loc.ID, &loc.Division, &loc.District, &loc.Upazila, &loc.Union); err != nil {
			return nil, readError("scan form_data", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, readError("iterate form_data", err)
	}
	return locations, nil
}

// GetLocation returns false when no row has the given id.
func (q *Queries) GetLocation(ctx context.Context, id int64) (models.LocationRecord, bool, error) {
	if err := q.store.available(); err != nil {
		return models.LocationRecord{}, false, err
	}

	var loc models.LocationRecord
	err := q.q.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM form_data WHERE id = $1`, id).
		Scan(&loc.ID, &loc.Division, &loc.District, &loc.Upazila, &loc.Union)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocationRecord{}, false, nil
	}
	if err != nil {
		return models.LocationRecord{}, false, readError("select form_data", err)
	}
	return loc, true, nil
}

// ListSurveyEntries returns the entries of parentID in insertion order.
func (q *Queries) ListSurveyEntries(ctx context.Context, parentID int64) ([]models.SurveySheetEntry, error) {
	if err := q.store.available(); err != nil {
		return nil, err
	}

	rows, err := q.q.QueryContext(ctx, `
		SELECT id, form_data_id, COALESCE("mouzaName", ''), COALESCE("surveyType", ''), COALESCE("sheetNumber", '')
		FROM mouza_info
		WHERE form_data_id = $1
		ORDER BY id
	`, parentID)
	if err != nil {
		return nil, readError("select mouza_info", err)
	}
	defer rows.Close()

	entries := []models.SurveySheetEntry{}
	for rows.Next() {
		var e models.SurveySheetEntry
		if err := rows.Scan(&e.ID, &e.FormDataID, &e.MouzaName, &e.SurveyType, &e.SheetNumber); err != nil {
			return nil, readError("scan mouza_info", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, readError("iterate mouza_info", err)
	}
	return entries, nil
}

// DeleteLocation removes the entries of id and then id itself. Run it inside
// RunInTx so both statements succeed or neither does. Deleting a missing id
// affects no rows and is not an error.
func (q *Queries) DeleteLocation(ctx context.Context, id int64) (int64, error) {
	if _, err := q.DeleteSurveyEntriesByParent(ctx, id); err != nil {
		return 0, err
	}

	res, err := q.q.ExecContext(ctx, `DELETE FROM form_data WHERE id = $1`, id)
	if err != nil {
		return 0, writeError("delete form_data", err)
	}
	return rowsAffected(res), nil
}

// DeleteSurveyEntriesByParent removes every entry of parentID and leaves the
// form_data row in place.
func (q *Queries) DeleteSurveyEntriesByParent(ctx context.Context, parentID int64) (int64, error) {
	if err := q.store.available(); err != nil {
		return 0, err
	}

	res, err := q.q.ExecContext(ctx, `DELETE FROM mouza_info WHERE form_data_id = $1`, parentID)
	if err != nil {
		return 0, writeError("delete mouza_info", err)
	}
	return rowsAffected(res), nil
}

// LocationWithEntries reads a location and its entries; the two reads are
// consistent only when q is bound to a transaction.
func (q *Queries) LocationWithEntries(ctx context.Context, id int64) (models.LocationWithEntries, bool, error) {
	loc, found, err := q.GetLocation(ctx, id)
	if err != nil || !found {
		return models.LocationWithEntries{}, found, err
	}

	entries, err := q.ListSurveyEntries(ctx, id)
	if err != nil {
		return models.LocationWithEntries{}, false, err
	}
	return models.LocationWithEntries{LocationRecord: loc, MouzaData: entries}, true, nil
}

func rowsAffected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

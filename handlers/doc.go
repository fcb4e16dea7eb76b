// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the form API.

# Handler Types

FormHandler serves every route. It is built from the store and the submission
workflow:

	wf := submission.New(st, submission.ModeAtomic)
	formHandler := handlers.NewFormHandler(st, wf)

# Routes

	POST   /submit                             → Submit
	GET    /data                               → List
	GET    /data/{id}                          → Get
	DELETE /data/{id}                          → DeleteLocation
	DELETE /delete-mouza-info/{form_data_id}   → DeleteMouzaInfo

Both deletes are idempotent: an id with nothing to delete still returns 200.

# Status Codes

  - 200: success
  - 400: malformed JSON, missing fields, non-integer id
  - 404: GET /data/{id} for an unknown id
  - 500: any store failure, including partial mouza inserts

Error bodies always have the form {"message": ..., "error": ...}.
*/
package handlers

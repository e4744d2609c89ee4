// Package titles renders workflow title templates.
//
// # Overview
//
// An assignment action may carry a title template such as
//
//	{correspondent} {document_type} {created_year}-{created_month}
//
// Placeholders are single-brace tags. Rendering happens once per run, after
// every assignment and removal has been folded into the document state, so
// a template always sees the final correspondent and document type.
//
// # Placeholders
//
//	correspondent, document_type, owner_username
//	original_filename              file name without directory or extension
//	added, created                 date as YYYY-MM-DD
//	added_year, created_year       four digit year
//	added_year_short, ...          two digit year
//	added_month, ...               two digit month
//	added_month_name, ...          full month name
//	added_month_name_short, ...    abbreviated month name
//	added_day, ...                 two digit day
//	added_time, ...                HH:MM
//
// The created placeholders are only available when the document has a
// creation date. Unset references render as "None".
//
// # Errors
//
// Unbalanced or nested braces, empty tags and unknown placeholders are
// TEMPLATE_INVALID errors. Callers keep the previous title and record the
// error instead of aborting.
package titles

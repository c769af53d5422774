// Package sqlbuilder renders the dynamic fragments of the data layer's SQL:
// partial-update SET lists and per-entity WHERE clauses.
//
// Both builders are pure functions over their inputs. They emit PostgreSQL
// positional placeholders ($1, $2, ...) together with a value slice aligned
// to them, and the caller splices the fragment into a base statement:
//
//	set, vals, err := sqlbuilder.PartialUpdate(fields, companyColumns)
//	sql := fmt.Sprintf("UPDATE companies SET %s WHERE handle = $%d", set, len(vals)+1)
//
// Filter vocabularies are fixed per entity (CompanyFilters, JobFilters).
// Anything outside the recognized set is a FilterError, so filter validation
// lives here and nowhere else.
package sqlbuilder

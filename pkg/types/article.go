// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-fetcher pipeline.
package types

// NoEmail is the CorrespondingAuthorEmail value used when no author
// affiliation in a record contains an email address.
const NoEmail = "N/A"

// Columns is the fixed CSV header. Its order matches ArticleRow.Record.
var Columns = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Authors",
	"Non-academic Authors",
	"Company Affiliations",
	"Corresponding Author Email",
}

// ArticleRow is the flattened view of one PubMed article record. Every
// field is a plain string; missing source data becomes "".
type ArticleRow struct {
	// PubmedID is the record PMID.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is "year-month-day" with absent outer parts dropped
	// (e.g. "2020-3", "2023--05").
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists "Last, First" names joined by "; ".
	Authors string `json:"authors" yaml:"authors"`

	// NonAcademicAuthors lists authors whose affiliation is not academic.
	NonAcademicAuthors string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations holds the affiliations of NonAcademicAuthors in
	// the same order, joined by "; ".
	CompanyAffiliations string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingAuthorEmail is the email found in the last author
	// affiliation that contained one, or NoEmail.
	CorrespondingAuthorEmail string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}

// Record returns the row as a slice in Columns order.
func (r ArticleRow) Record() []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.PublicationDate,
		r.Authors,
		r.NonAcademicAuthors,
		r.CompanyAffiliations,
		r.CorrespondingAuthorEmail,
	}
}

// RowFromRecord builds an ArticleRow from a Columns-ordered slice. Short
// records leave the trailing fields empty.
func RowFromRecord(rec []string) ArticleRow {
	get := func(i int) string {
		if i < len(rec) {
			return rec[i]
		}
		return ""
	}
	return ArticleRow{
		PubmedID:                 get(0),
		Title:                    get(1),
		PublicationDate:          get(2),
		Authors:                  get(3),
		NonAcademicAuthors:       get(4),
		CompanyAffiliations:      get(5),
		CorrespondingAuthorEmail: get(6),
	}
}

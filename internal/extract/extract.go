// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a PubMed EFetch XML document into flat article
// rows: identifier, title, publication date, authors, non-academic
// authors with their company affiliations, and a corresponding-author
// email scraped from affiliation text.
package extract

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/pubmed-fetcher/internal/logger"
	"github.com/pdiddy/pubmed-fetcher/internal/report"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// academicKeywords mark an affiliation as academic when any of them
// appears in its lowercased text.
var academicKeywords = []string{"university", "institute", "school"}

// emailRe matches email-shaped substrings. The local part and domain
// accept word characters, dots and hyphens; the TLD needs two letters.
var emailRe = regexp.MustCompile(`(?i)[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[a-z]{2,}`)

const listSep = "; "

// ParseError reports an EFetch document that is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing PubMed XML: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes an EFetch document and returns one row per PubmedArticle
// in document order. Element text is used as-is; missing elements become
// empty strings and a record without a MedlineCitation yields an empty
// row rather than an error.
func Parse(data []byte) ([]types.ArticleRow, error) {
	var set pubmedArticleSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, &ParseError{Err: err}
	}

	rows := make([]types.ArticleRow, 0, len(set.Articles))
	for _, pa := range set.Articles {
		rows = append(rows, convertArticle(pa))
	}
	logger.Debug("extracted %d rows", len(rows))
	return rows, nil
}

// ExtractToCSV parses data and, when path is non-empty, writes the rows
// to path as CSV. The rows are returned in both cases.
func ExtractToCSV(data []byte, path string) ([]types.ArticleRow, error) {
	rows, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := report.WriteCSV(path, rows); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func convertArticle(pa pubmedArticle) types.ArticleRow {
	mc := pa.Citation
	xa := mc.Article
	pd := xa.Journal.JournalIssue.PubDate

	var authors, nonAcademic, companies []string
	email := types.NoEmail

	for _, au := range xa.AuthorList.Authors {
		name := AuthorName(au.LastName, au.ForeName)
		authors = append(authors, name)

		aff := au.affiliation()
		if aff != "" && !IsAcademic(aff) {
			nonAcademic = append(nonAcademic, name)
			companies = append(companies, aff)
		}

		// Later authors overwrite earlier matches.
		if found := FindEmails(aff); len(found) > 0 {
			email = strings.Join(found, ", ")
		}
	}

	return types.ArticleRow{
		PubmedID:                 mc.PMID,
		Title:                    cleanInnerXML(xa.ArticleTitle.Inner),
		PublicationDate:          PublicationDate(pd.Year, pd.Month, pd.Day),
		Authors:                  strings.Join(authors, listSep),
		NonAcademicAuthors:       strings.Join(nonAcademic, listSep),
		CompanyAffiliations:      strings.Join(companies, listSep),
		CorrespondingAuthorEmail: email,
	}
}

// PublicationDate joins the parts as "year-month-day" and strips leading
// and trailing hyphens. Empty middle parts are kept, so ("2023", "", "05")
// gives "2023--05".
func PublicationDate(year, month, day string) string {
	return strings.Trim(year+"-"+month+"-"+day, "-")
}

// AuthorName formats "Last, Fore" and trims commas and spaces from both
// ends, so a missing ForeName gives "Last" and a missing LastName gives
// "Fore".
func AuthorName(last, fore string) string {
	return strings.Trim(last+", "+fore, ", ")
}

// IsAcademic reports whether an affiliation names a university, institute
// or school. The test is case-insensitive.
func IsAcademic(affiliation string) bool {
	lower := strings.ToLower(affiliation)
	for _, kw := range academicKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FindEmails returns every email-shaped substring of s in order.
func FindEmails(s string) []string {
	return emailRe.FindAllString(s, -1)
}

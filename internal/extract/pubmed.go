// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"html"
	"regexp"
	"strings"
)

// PubMed EFetch XML structures. Only the elements read by Parse are
// declared; everything else in the document is ignored. Every field is a
// plain string so a missing element decodes to "".

type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string     `xml:"PMID"`
	Article xmlArticle `xml:"Article"`
}

type xmlArticle struct {
	Journal      xmlJournal      `xml:"Journal"`
	ArticleTitle xmlInnerContent `xml:"ArticleTitle"`
	AuthorList   xmlAuthorList   `xml:"AuthorList"`
}

type xmlJournal struct {
	JournalIssue xmlJournalIssue `xml:"JournalIssue"`
}

type xmlJournalIssue struct {
	PubDate xmlPubDate `xml:"PubDate"`
}

type xmlPubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

// xmlInnerContent keeps the raw inner XML so markup such as <i> or <sup>
// inside a title does not truncate the text.
type xmlInnerContent struct {
	Inner string `xml:",innerxml"`
}

type xmlAuthorList struct {
	Authors []xmlAuthor `xml:"Author"`
}

type xmlAuthor struct {
	LastName        string               `xml:"LastName"`
	ForeName        string               `xml:"ForeName"`
	AffiliationInfo []xmlAffiliationInfo `xml:"AffiliationInfo"`
}

type xmlAffiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}

// affiliation returns the author's first affiliation text unmodified, or "".
func (a xmlAuthor) affiliation() string {
	if len(a.AffiliationInfo) == 0 {
		return ""
	}
	return a.AffiliationInfo[0].Affiliation
}

// xmlTagRe matches XML/HTML tags for stripping from innerxml content.
var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// cleanInnerXML strips tags and decodes entities from innerxml content.
func cleanInnerXML(s string) string {
	stripped := xmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(stripped))
}

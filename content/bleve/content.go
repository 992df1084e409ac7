package bleve

import (
	"strconv"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/blevesearch/bleve/search/query"

	"github.com/Dev-MihirParmar/Enlighten/content"
)

type ContentIndex struct {
	index bleve.Index
}

// Open opens the index at path, creating it if it does not exist yet.
func (s *ContentIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, createMapping())
	}
	if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *ContentIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func (s *ContentIndex) Index(c *content.Content) error {
	data := map[string]interface{}{
		"title":    c.Title,
		"body":     c.Body,
		"tags":     c.Tags,
		"category": c.Category,
		"status":   c.Status,
	}

	return s.index.Index(strconv.Itoa(c.ID), data)
}

func (s *ContentIndex) Delete(id int) error {
	return s.index.Delete(strconv.Itoa(id))
}

func (s *ContentIndex) Search(search content.Search) (content.SearchResults, error) {
	q := andQ(
		query.NewMatchAllQuery(),
		s.searchText(search.Q),
		s.termsQuery(search.Tags, "tags"),
		s.termQuery(search.Category, "category"),
		s.termQuery(search.Status, "status"),
	)

	searchRequest := bleve.NewSearchRequest(q)
	searchRequest.SortBy([]string{"_id"})
	searchRequest.AddFacet("tags", bleve.NewFacetRequest("tags", 50))

	if search.Limit > 0 {
		searchRequest.Size = int(search.Limit)
	}
	searchRequest.From = int(search.Offset)

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return content.SearchResults{}, err
	}

	ids := make([]int, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		ids[i], err = strconv.Atoi(hit.ID)
		if err != nil {
			return content.SearchResults{}, err
		}
	}

	results := content.SearchResults{
		IDs: ids,
		Pagination: content.Pagination{
			Total:  searchResults.Total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}

	if facet, ok := searchResults.Facets["tags"]; ok {
		tags := make(content.TagsFacet, len(facet.Terms))
		for i, term := range facet.Terms {
			tags[i].Tag = term.Term
			tags[i].Count = term.Count
		}
		results.Facets.Tags = tags
	}

	return results, nil
}

// createMapping indexes titles and bodies with the english analyzer, and
// tags, categories and statuses as keywords so they can be filtered on
// exactly.
func createMapping() mapping.IndexMapping {
	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = en.AnalyzerName

	keywordField := bleve.NewTextFieldMapping()
	keywordField.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", textField)
	doc.AddFieldMappingsAt("body", textField)
	doc.AddFieldMappingsAt("tags", keywordField)
	doc.AddFieldMappingsAt("category", keywordField)
	doc.AddFieldMappingsAt("status", keywordField)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}

func orQ(qs ...query.Query) query.Query {
	ors := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ors = append(ors, q)
		}
	}

	if len(ors) == 0 {
		return nil
	}
	return query.NewDisjunctionQuery(ors)
}

// searchText matches every word of the query as a prefix in the title, the
// body or the tags.
func (s *ContentIndex) searchText(queryString string) query.Query {
	words := strings.Fields(queryString)

	ands := make([]query.Query, 0, len(words))
	for _, word := range words {
		ands = append(ands, orQ(
			s.prefixQuery(word, "title", en.AnalyzerName),
			s.prefixQuery(word, "body", en.AnalyzerName),
			s.prefixQuery(word, "tags", simple.Name),
		))
	}

	return andQ(ands...)
}

func (s *ContentIndex) prefixQuery(queryString, field, analyzerName string) query.Query {
	analyzer := s.index.Mapping().AnalyzerNamed(analyzerName)
	tokens := analyzer.Analyze([]byte(queryString))
	if len(tokens) == 0 {
		return nil
	}

	conjuncs := make([]query.Query, len(tokens))
	for i, token := range tokens {
		conjuncs[i] = &query.PrefixQuery{
			Prefix:   string(token.Term),
			FieldVal: field,
		}
	}

	return query.NewConjunctionQuery(conjuncs)
}

func (*ContentIndex) termQuery(term, field string) query.Query {
	if term == "" {
		return nil
	}

	return &query.TermQuery{
		Term:     term,
		FieldVal: field,
	}
}

func (*ContentIndex) termsQuery(terms []string, field string) query.Query {
	if len(terms) == 0 {
		return nil
	}

	ors := make([]query.Query, len(terms))
	for i, term := range terms {
		ors[i] = &query.TermQuery{
			Term:     term,
			FieldVal: field,
		}
	}

	return orQ(ors...)
}

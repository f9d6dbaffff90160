// Package matching orchestrates normalization, vectorization and
// ranking for the two matching entry points.
package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bhetiyo/backend/internal/domain"
	"github.com/bhetiyo/backend/internal/search"
	"github.com/bhetiyo/backend/internal/storage"
	"github.com/bhetiyo/backend/internal/text"
)

// Match pairs a found report with its cosine similarity to a lost
// report, as a [0,1] fraction.
type Match struct {
	Report     domain.Report
	Similarity float64
}

// SearchHit pairs a report with its free-text search score as a
// percentage (0-100).
type SearchHit struct {
	Report       domain.Report
	ScorePercent float64
}

// Service runs the matching pipeline against a corpus snapshot fetched
// per request. Nothing is cached between requests: the report set
// changes continuously and each request sees whatever was fetched.
type Service struct {
	store      storage.ReportStore
	normalizer *text.Normalizer
	log        *logrus.Entry

	// minSimilarity filters ranked matches (fraction scale);
	// minScorePercent filters search hits (percentage scale).
	minSimilarity   float64
	minScorePercent float64
}

func NewService(store storage.ReportStore, normalizer *text.Normalizer, log *logrus.Entry, minSimilarity, minScorePercent float64) *Service {
	return &Service{
		store:           store,
		normalizer:      normalizer,
		log:             log,
		minSimilarity:   minSimilarity,
		minScorePercent: minScorePercent,
	}
}

// MatchesForLostReport ranks all found reports against one lost report.
//
// The lost report's description is the query document, and it is folded
// into the IDF corpus alongside the found descriptions, so IDF reflects
// the query's vocabulary too. (Search deliberately does not do this;
// the two call sites differ.) Returns ErrNotFound when the id is
// missing or does not refer to a lost report.
func (s *Service) MatchesForLostReport(ctx context.Context, lostReportID uuid.UUID) ([]Match, error) {
	var (
		lost  domain.Report
		found []domain.Report
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lost, err = s.store.Get(gctx, lostReportID)
		return err
	})
	g.Go(func() error {
		var err error
		found, err = s.store.ListByType(gctx, domain.ReportTypeFound)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if lost.ReportType != domain.ReportTypeLost {
		return nil, fmt.Errorf("report %s is not a lost report: %w", lostReportID, domain.ErrNotFound)
	}
	if len(found) == 0 {
		return []Match{}, nil
	}

	queryTokens := s.normalizer.Normalize(lost.Description)

	// Corpus = query document + every found description, in that order.
	corpus := make([][]string, 0, len(found)+1)
	corpus = append(corpus, queryTokens)
	for _, r := range found {
		corpus = append(corpus, s.normalizer.Normalize(r.Description))
	}

	idf := search.InverseDocFrequency(corpus)
	queryVec := search.Vectorize(search.TermFrequency(queryTokens), idf)

	docVecs := make([]search.TermVector, len(found))
	for i := range found {
		docVecs[i] = search.Vectorize(search.TermFrequency(corpus[i+1]), idf)
	}

	ranked := search.Rank(queryVec, docVecs, s.minSimilarity)

	matches := make([]Match, len(ranked))
	for i, res := range ranked {
		matches[i] = Match{Report: found[res.Index], Similarity: res.Score}
	}

	s.log.WithFields(logrus.Fields{
		"lost_report": lostReportID,
		"candidates":  len(found),
		"matches":     len(matches),
	}).Debug("ranked found reports")

	return matches, nil
}

// Search ranks every report (lost and found) against a free-text query.
//
// Documents are item name + description. Unlike MatchesForLostReport,
// the query is vectorized against the corpus's IDF only; its own
// vocabulary does not shift the weights. A query that normalizes to
// nothing (all stopwords) returns an empty result set without error.
func (s *Service) Search(ctx context.Context, query string) ([]SearchHit, error) {
	queryTokens := s.normalizer.Normalize(query)
	if len(queryTokens) == 0 {
		return []SearchHit{}, nil
	}

	reports, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return []SearchHit{}, nil
	}

	corpus := make([][]string, len(reports))
	for i, r := range reports {
		corpus[i] = s.normalizer.Normalize(r.SearchText())
	}

	idf := search.InverseDocFrequency(corpus)
	queryVec := search.Vectorize(search.TermFrequency(queryTokens), idf)

	docVecs := make([]search.TermVector, len(reports))
	for i := range reports {
		docVecs[i] = search.Vectorize(search.TermFrequency(corpus[i]), idf)
	}

	ranked := search.Rank(queryVec, docVecs, s.minScorePercent/100)

	hits := make([]SearchHit, len(ranked))
	for i, res := range ranked {
		hits[i] = SearchHit{Report: reports[res.Index], ScorePercent: res.Score * 100}
	}

	s.log.WithFields(logrus.Fields{
		"corpus": len(reports),
		"hits":   len(hits),
	}).Debug("search ranked reports")

	return hits, nil
}

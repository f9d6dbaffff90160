// Package api exposes the service over JSON HTTP. Authentication is
// handled upstream; handlers read the caller's identity from
// gateway-injected headers and only enforce the core's own rules
// (e.g. the self-claim check lives in the claims service).
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bhetiyo/backend/internal/claims"
	"github.com/bhetiyo/backend/internal/domain"
	"github.com/bhetiyo/backend/internal/matching"
	"github.com/bhetiyo/backend/internal/storage"
)

// userHeader carries the authenticated user id, set by the gateway.
const userHeader = "X-User-ID"

type Server struct {
	Store   storage.ReportStore
	Matcher *matching.Service
	Claims  *claims.Service
	Logger  *logrus.Entry
	Router  *http.ServeMux
}

func NewServer(store storage.ReportStore, matcher *matching.Service, claimSvc *claims.Service, logger *logrus.Entry) *Server {
	s := &Server{
		Store:   store,
		Matcher: matcher,
		Claims:  claimSvc,
		Logger:  logger,
		Router:  http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("POST /api/v1/reports", s.handleCreateReport)
	s.Router.HandleFunc("GET /api/v1/reports", s.handleListReports)
	s.Router.HandleFunc("GET /api/v1/reports/my", s.handleMyReports)
	s.Router.HandleFunc("GET /api/v1/reports/{id}", s.handleGetReport)
	s.Router.HandleFunc("GET /api/v1/reports/{id}/matches", s.handleMatches)
	s.Router.HandleFunc("POST /api/v1/reports/{id}/claim", s.handleClaim)
	s.Router.HandleFunc("GET /api/v1/search", s.handleSearch)
	s.Router.HandleFunc("PUT /api/v1/admin/reports/{id}/claim-status", s.handleSetClaimStatus)
	s.Router.HandleFunc("DELETE /api/v1/admin/reports/{id}", s.handleDeleteReport)
}

func (s *Server) Start(addr string) error {
	s.Logger.Infof("Starting API Server on %s", addr)
	return http.ListenAndServe(addr, s.Router)
}

// Views

type ErrorResponse struct {
	Error string `json:"error"`
}

type ReportView struct {
	ID          string    `json:"id"`
	ItemName    string    `json:"itemName"`
	ReportType  string    `json:"reportType"`
	Location    string    `json:"location"`
	Contact     string    `json:"contact"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	PostedBy    string    `json:"postedBy"`
	ClaimStatus string    `json:"claimStatus"`
	ClaimBy     *string   `json:"claimBy"`
	ClaimScore  float64   `json:"claimScore"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MatchView struct {
	FoundReport ReportView `json:"foundReport"`
	Similarity  float64    `json:"similarity"`
}

type SearchHitView struct {
	Report     ReportView `json:"report"`
	MatchScore float64    `json:"matchScore"`
}

func toReportView(r domain.Report) ReportView {
	v := ReportView{
		ID:          r.ID.String(),
		ItemName:    r.ItemName,
		ReportType:  string(r.ReportType),
		Location:    r.Location,
		Contact:     r.Contact,
		Date:        r.Date,
		Description: r.Description,
		PostedBy:    r.PostedBy.String(),
		ClaimStatus: string(r.ClaimStatus),
		ClaimScore:  r.ClaimScore,
		CreatedAt:   r.CreatedAt,
	}
	if r.ClaimBy != nil {
		claimBy := r.ClaimBy.String()
		v.ClaimBy = &claimBy
	}
	return v
}

// Handlers

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req struct {
		ItemName    string    `json:"itemName"`
		ReportType  string    `json:"reportType"`
		Location    string    `json:"location"`
		Contact     string    `json:"contact"`
		Date        time.Time `json:"date"`
		Description string    `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	reportType := domain.ReportType(req.ReportType)
	if strings.TrimSpace(req.ItemName) == "" || strings.TrimSpace(req.Description) == "" || !reportType.Valid() {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "itemName, description and a valid reportType are required"})
		return
	}

	report := domain.Report{
		ItemName:    req.ItemName,
		ReportType:  reportType,
		Location:    req.Location,
		Contact:     req.Contact,
		Date:        req.Date,
		Description: req.Description,
		PostedBy:    userID,
		ClaimStatus: domain.InitialClaimStatus(reportType),
	}
	if report.Date.IsZero() {
		report.Date = time.Now().UTC()
	}

	if err := s.Store.Create(r.Context(), &report); err != nil {
		s.fail(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, toReportView(report))
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	var (
		reports []domain.Report
		err     error
	)
	switch typ := r.URL.Query().Get("type"); typ {
	case "":
		reports, err = s.Store.ListAll(r.Context())
	case string(domain.ReportTypeLost), string(domain.ReportTypeFound):
		reports, err = s.Store.ListByType(r.Context(), domain.ReportType(typ))
	default:
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "type must be lost or found"})
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, toReportViews(reports))
}

func (s *Server) handleMyReports(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	reports, err := s.Store.ListByPoster(r.Context(), userID)
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, toReportViews(reports))
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	report, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, toReportView(report))
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	matches, err := s.Matcher.MatchesForLostReport(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}

	views := make([]MatchView, len(matches))
	for i, m := range matches {
		views[i] = MatchView{FoundReport: toReportView(m.Report), Similarity: m.Similarity}
	}
	jsonResponse(w, http.StatusOK, views)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	hits, err := s.Matcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.fail(w, err)
		return
	}

	views := make([]SearchHitView, len(hits))
	for i, h := range hits {
		views[i] = SearchHitView{Report: toReportView(h.Report), MatchScore: h.ScorePercent}
	}
	jsonResponse(w, http.StatusOK, views)
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		ClaimScore *float64 `json:"claimScore"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
			return
		}
	}

	score := 0.0
	if req.ClaimScore != nil {
		score = *req.ClaimScore
	}

	if err := s.Claims.SubmitClaim(r.Context(), id, userID, score); err != nil {
		s.fail(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Claim request submitted"})
}

func (s *Server) handleSetClaimStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		ClaimStatus string `json:"claimStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	if err := s.Claims.SetClaimStatus(r.Context(), id, domain.ClaimStatus(req.ClaimStatus)); err != nil {
		s.fail(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Claim status updated"})
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Report deleted"})
}

// Helpers

func toReportViews(reports []domain.Report) []ReportView {
	views := make([]ReportView, len(reports))
	for i, r := range reports {
		views[i] = toReportView(r)
	}
	return views
}

func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.Header.Get(userHeader)
	if raw == "" {
		jsonResponse(w, http.StatusUnauthorized, ErrorResponse{Error: "Missing " + userHeader + " header"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		jsonResponse(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid " + userHeader + " header"})
		return uuid.Nil, false
	}
	return id, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid report id"})
		return uuid.Nil, false
	}
	return id, true
}

// fail maps domain sentinels to status codes. "No matches" and "search
// found nothing" are successful empty results and never reach here.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		jsonResponse(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		jsonResponse(w, http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidState):
		jsonResponse(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		s.Logger.WithError(err).Error("request failed")
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

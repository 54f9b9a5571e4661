package httpadapter

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fundmyfuture/internal/core/domain"
	"fundmyfuture/internal/core/port"
)

// campaignID extracts and validates the {id} path parameter. Campaign
// ids are UUIDs; anything else can only be an unknown campaign, so it
// 404s here instead of reaching Postgres as a cast error.
func campaignID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, id)
	}
	return id, nil
}

type createCampaignRequest struct {
	StudentID   string `json:"student_id" validate:"required"`
	OwnerEmail  string `json:"owner_email" validate:"omitempty,email"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Institution string `json:"institution"`
	Course      string `json:"course"`
	YearOfStudy int    `json:"year_of_study" validate:"gte=0,lte=10"`
	GoalCents   int64  `json:"goal_cents" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,len=3"`
	EndTime     string `json:"end_time" validate:"omitempty"`
}

type campaignResponse struct {
	ID           string     `json:"id"`
	StudentID    string     `json:"student_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Institution  string     `json:"institution"`
	Course       string     `json:"course,omitempty"`
	YearOfStudy  int        `json:"year_of_study,omitempty"`
	GoalCents    int64      `json:"goal_cents"`
	CurrentCents int64      `json:"current_cents"`
	Currency     string     `json:"currency"`
	DonorCount   int        `json:"donor_count"`
	State        string     `json:"state"`
	Verified     bool       `json:"verified"`
	Featured     bool       `json:"featured"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		StudentID:    c.StudentID,
		Title:        c.Title,
		Description:  c.Description,
		Category:     c.Category,
		Institution:  c.Institution,
		Course:       c.Course,
		YearOfStudy:  c.YearOfStudy,
		GoalCents:    c.Goal.Cents,
		CurrentCents: c.Current.Cents,
		Currency:     c.Goal.Currency,
		DonorCount:   c.DonorCount,
		State:        string(c.State),
		Verified:     c.Verified,
		Featured:     c.Featured,
		EndTime:      c.EndTime,
		CreatedAt:    c.CreatedAt,
	}
}

// handleCreateCampaign registers a new campaign. It starts in pending
// state and becomes visible to funders only after verification.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	var endTime *time.Time
	if req.EndTime != "" {
		t, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			http.Error(w, "invalid 'end_time' timestamp", http.StatusBadRequest)
			return
		}
		endTime = &t
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignInput{
		StudentID:   req.StudentID,
		OwnerEmail:  req.OwnerEmail,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Institution: req.Institution,
		Course:      req.Course,
		YearOfStudy: req.YearOfStudy,
		Goal:        domain.NewMoney(req.GoalCents, req.Currency),
		EndTime:     endTime,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleListCampaigns browses campaigns with optional `status`,
// `featured`, `student_id` and `limit` query parameters, newest first.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q = r.URL.Query()
		f = port.CampaignFilter{Limit: 20}
	)
	if s := q.Get("status"); s != "" {
		switch st := domain.CampaignState(s); st {
		case domain.CampaignPending, domain.CampaignActive, domain.CampaignCompleted, domain.CampaignRejected:
			f.State = &st
		default:
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("featured"); s != "" {
		featured, err := strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "invalid featured flag", http.StatusBadRequest)
			return
		}
		f.Featured = &featured
	}
	if s := q.Get("student_id"); s != "" {
		f.StudentID = &s
	}
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 || limit > 100 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		f.Limit = limit
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toCampaignResponse(&campaigns[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleGetCampaign fetches a single campaign by id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

type updateCampaignRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Institution *string `json:"institution"`
	Course      *string `json:"course"`
	YearOfStudy *int    `json:"year_of_study" validate:"omitempty,gte=0,lte=10"`
	EndTime     *string `json:"end_time"`
}

// handleUpdateCampaign lets the owning student edit the descriptive
// fields of their campaign. Identity arrives pre-validated in the
// X-Student-ID header; goal, state and aggregates are not editable.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	studentID := r.Header.Get("X-Student-ID")
	if studentID == "" {
		h.writeError(w, r, domain.ErrPermissionDenied)
		return
	}
	var req updateCampaignRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	in := port.UpdateCampaignInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Institution: req.Institution,
		Course:      req.Course,
		YearOfStudy: req.YearOfStudy,
	}
	if req.EndTime != nil {
		t, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			http.Error(w, "invalid 'end_time' timestamp", http.StatusBadRequest)
			return
		}
		in.EndTime = &t
	}
	c, err := h.svc.UpdateCampaign(r.Context(), id, studentID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

type donationResponse struct {
	ID          string    `json:"id"`
	DonorName   string    `json:"donor_name"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// handleListDonations returns the completed donations of a campaign,
// newest first, with funder identity anonymized when requested.
func (h *Handler) handleListDonations(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	donations, err := h.svc.ListDonations(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]donationResponse, 0, len(donations))
	for i := range donations {
		d := &donations[i]
		out = append(out, donationResponse{
			ID:          d.ID,
			DonorName:   d.DisplayName(),
			AmountCents: d.Amount.Cents,
			Currency:    d.Amount.Currency,
			Message:     d.Message,
			CreatedAt:   d.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

type verifyCampaignRequest struct {
	Approved bool   `json:"approved"`
	AdminID  string `json:"admin_id" validate:"required"`
}

// handleVerifyCampaign applies an administrative verification decision.
// The caller must present the shared admin token; the compare is
// constant time.
func (h *Handler) handleVerifyCampaign(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Admin-Token")
	if h.adminToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
		h.writeError(w, r, domain.ErrPermissionDenied)
		return
	}
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req verifyCampaignRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	if err := h.svc.VerifyCampaign(r.Context(), id, req.Approved, req.AdminID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

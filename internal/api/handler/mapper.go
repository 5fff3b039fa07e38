package handler

import (
	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// --- Service result → HTTP response ---

func toPartnershipResponse(p *domain.Partnership) partnershipResponse {
	return partnershipResponse{
		ID:          p.ID,
		RequesterID: p.RequesterID,
		RecipientID: p.RecipientID,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:          j.ID,
		CompanyID:   j.CompanyID,
		CollegeID:   j.CollegeID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		CTC:         j.CTC,
		Deadline:    j.Deadline.UTC(),
		MinCGPA:     j.Criteria.MinCGPA,
		Branches:    j.Criteria.Branches,
		Rounds:      j.Rounds,
		Status:      string(j.Status),
		CreatedAt:   j.CreatedAt.UTC(),
	}
}

func toJobViewResponse(v ports.JobView) jobResponse {
	resp := toJobResponse(&v.Job)
	resp.CollegeName = v.CollegeName
	resp.CompanyName = v.CompanyName
	resp.CompanyEmail = v.CompanyEmail
	return resp
}

func toJobViewResponses(views []ports.JobView) []jobResponse {
	out := make([]jobResponse, len(views))
	for i, v := range views {
		out[i] = toJobViewResponse(v)
	}
	return out
}

package handler

import (
	"time"

	"github.com/campushire/recruitment-system/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name      string `json:"name"       validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	Role      string `json:"role"       validate:"required,oneof=student company college admin"`
	CollegeID string `json:"college_id"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  ports.AccountView `json:"user"`
}

// --- Roster ---

type addStudentRequest struct {
	Name      string `json:"name"   validate:"required"`
	Email     string `json:"email"  validate:"required,email"`
	Branch    string `json:"branch"`
	CGPA      string `json:"cgpa"`
	Phone     string `json:"phone"`
	CollegeID string `json:"college_id"`
}

type addStaffRequest struct {
	Name      string `json:"name"  validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	CollegeID string `json:"college_id"`
}

// bulkImportRequest carries decoded spreadsheet rows. Row field names are
// passed through untouched; the service normalizes header casing and
// whitespace.
type bulkImportRequest struct {
	CollegeID string           `json:"college_id"`
	Students  []ports.ImportRow `json:"students" validate:"required,min=1"`
}

type updateProfileRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Branch string `json:"branch"`
	CGPA   string `json:"cgpa"`
	Skills string `json:"skills"`
}

// --- Network ---

type connectRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
}

type respondRequest struct {
	PartnershipID string `json:"partnership_id" validate:"required"`
	Decision      string `json:"decision"       validate:"required,oneof=accept reject"`
}

type partnershipResponse struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	RecipientID string    `json:"recipient_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- Jobs ---

type createJobRequest struct {
	CollegeID   string   `json:"college_id"  validate:"required"`
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	CTC         float64  `json:"ctc"         validate:"gte=0"`
	Deadline    string   `json:"deadline"`
	MinCGPA     float64  `json:"min_cgpa"    validate:"gte=0,lte=10"`
	Branches    []string `json:"branches"`
	Rounds      []string `json:"rounds"`
}

type jobResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	CollegeID    string    `json:"college_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	CTC          float64   `json:"ctc"`
	Deadline     time.Time `json:"deadline"`
	MinCGPA      float64   `json:"min_cgpa"`
	Branches     []string  `json:"branches,omitempty"`
	Rounds       []string  `json:"rounds,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	CollegeName  string    `json:"college_name,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"`
	CompanyEmail string    `json:"company_email,omitempty"`
}

package dto

// CreateCompanyRequest represents the request to create a client company
type CreateCompanyRequest struct {
	Name            string  `json:"name" binding:"required"`
	Industry        *string `json:"industry"`
	Location        *string `json:"location"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	PostalCode      *string `json:"postal_code"`
	WebSite         *string `json:"web_site"`
	PrimaryPhone    *string `json:"primary_phone"`
	SecondaryPhone  *string `json:"secondary_phone"`
	ContactEmail    *string `json:"contact_email"`
	ContactPhone    *string `json:"contact_phone"`
	Departments     *string `json:"departments"`
	KeyTechnologies *string `json:"key_technologies"`
	MiscNotes       *string `json:"misc_notes"`
	IsHotCompany    bool    `json:"is_hot_company"`
	Status          string  `json:"status"`
}

// CreateJobOrderRequest represents the request to open a job order
type CreateJobOrderRequest struct {
	CompanyID          string   `json:"company_id" binding:"required"`
	Title              string   `json:"title" binding:"required"`
	Description        *string  `json:"description"`
	Requirements       *string  `json:"requirements"`
	Location           *string  `json:"location"`
	SalaryRange        *string  `json:"salary_range"`
	Positions          int      `json:"positions"`
	Status             string   `json:"status"`
	AssignedRecruiters []string `json:"assigned_recruiters"`
}

// UpdateJobOrderRequest represents the request to update a job order
type UpdateJobOrderRequest struct {
	Title              string   `json:"title" binding:"required"`
	Description        *string  `json:"description"`
	Requirements       *string  `json:"requirements"`
	Location           *string  `json:"location"`
	SalaryRange        *string  `json:"salary_range"`
	Positions          int      `json:"positions"`
	Status             string   `json:"status" binding:"required"`
	AssignedRecruiters []string `json:"assigned_recruiters"`
}

// CreateCandidateRequest represents the request to add a candidate to a pipeline
type CreateCandidateRequest struct {
	JobOrderID  string  `json:"job_order_id" binding:"required"`
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Phone       *string `json:"phone"`
	ResumeURL   *string `json:"resume_url"`
	LinkedinURL *string `json:"linkedin_url"`
}

// UpdateCandidateRequest represents the request to update candidate profile fields
type UpdateCandidateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	ResumeURL   *string `json:"resume_url"`
	LinkedinURL *string `json:"linkedin_url"`
}

// TransitionRequest represents an explicit candidate status transition
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// ScheduleInterviewRequest represents the request to schedule an interview
type ScheduleInterviewRequest struct {
	CandidateID     string  `json:"candidate_id" binding:"required"`
	Level           string  `json:"level" binding:"required"`
	ScheduledAt     string  `json:"scheduled_at" binding:"required"`
	InterviewerName *string `json:"interviewer_name"`
}

// InterviewDecisionRequest represents the decision on a completed interview
type InterviewDecisionRequest struct {
	Decision string  `json:"decision" binding:"required"`
	Feedback *string `json:"feedback"`
}

// CreateOfferRequest represents the request to extend an offer
type CreateOfferRequest struct {
	CandidateID         string   `json:"candidate_id" binding:"required"`
	OfferedRole         string   `json:"offered_role" binding:"required"`
	OfferedSalary       string   `json:"offered_salary" binding:"required"`
	ExpectedJoiningDate string   `json:"expected_joining_date" binding:"required"`
	JoiningBonus        *float64 `json:"joining_bonus"`
	Benefits            *string  `json:"benefits"`
	OfferNotes          *string  `json:"offer_notes"`
}

// OfferDecisionRequest represents the candidate's response to an offer
type OfferDecisionRequest struct {
	Accepted bool    `json:"accepted"`
	Notes    *string `json:"notes"`
}

// ConfirmJoiningRequest represents the confirmation that a candidate joined
type ConfirmJoiningRequest struct {
	ActualJoinDate string `json:"actual_join_date" binding:"required"`
}

// PostJoiningOutcomeRequest represents the final outcome after joining
type PostJoiningOutcomeRequest struct {
	Outcome string  `json:"outcome" binding:"required"`
	Notes   *string `json:"notes"`
}

// AssignRecruitersRequest represents the recruiter assignment for a job order
type AssignRecruitersRequest struct {
	RecruiterIDs []string `json:"recruiter_ids" binding:"required"`
}

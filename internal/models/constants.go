package models

// UserRole константы ролей пользователей
const (
	RoleAdmin     = "ADMIN"
	RoleLeader    = "LEADER"
	RoleRecruiter = "RECRUITER"
)

// ValidRoles список валидных ролей
var ValidRoles = map[string]struct{}{
	RoleAdmin:     {},
	RoleLeader:    {},
	RoleRecruiter: {},
}

// Действия для журнала активности
const (
	ActionStatusChanged      = "status_changed"
	ActionInterviewSchedule  = "interview_scheduled"
	ActionInterviewDecision  = "interview_decision"
	ActionInterviewCancel    = "interview_cancelled"
	ActionOfferCreated       = "offer_created"
	ActionOfferDecision      = "offer_decision"
	ActionOfferWithdrawn     = "offer_withdrawn"
	ActionJoiningConfirmed   = "joining_confirmed"
	ActionPostJoiningOutcome = "post_joining_outcome"
)

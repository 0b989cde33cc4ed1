package valueobject

import "github.com/ignatzorin/ats-backend/internal/pkg/apperror"

// CandidateStatus описывает положение кандидата в воронке найма.
type CandidateStatus string

const (
	CandidateStatusNoContact      CandidateStatus = "NO_CONTACT"
	CandidateStatusContacted      CandidateStatus = "CONTACTED"
	CandidateStatusQualified      CandidateStatus = "QUALIFIED"
	CandidateStatusRejected       CandidateStatus = "REJECTED"
	CandidateStatusOnHold         CandidateStatus = "ON_HOLD"
	CandidateStatusNextInterview  CandidateStatus = "NEXT_INTERVIEW"
	CandidateStatusHired          CandidateStatus = "HIRED"
	CandidateStatusOffered        CandidateStatus = "OFFERED"
	CandidateStatusOfferAccepted  CandidateStatus = "OFFER_ACCEPTED"
	CandidateStatusOfferDeclined  CandidateStatus = "OFFER_DECLINED"
	CandidateStatusJoined         CandidateStatus = "JOINED"
	CandidateStatusSuccessfulHire CandidateStatus = "SUCCESSFUL_HIRE"
	CandidateStatusBadDelivery    CandidateStatus = "BAD_DELIVERY"
	CandidateStatusTerminated     CandidateStatus = "TERMINATED"
)

// candidateTransitions — единственная таблица допустимых переходов.
// Решение по итогам интервью (REJECTED/HIRED/ON_HOLD/NEXT_INTERVIEW) допустимо
// из любого статуса активной воронки до оффера: QUALIFIED, NEXT_INTERVIEW, ON_HOLD.
// OFFERED -> HIRED существует для отзыва оффера: кандидат возвращается в
// воронку и ему можно сделать новый оффер.
var candidateTransitions = map[CandidateStatus][]CandidateStatus{
	CandidateStatusNoContact: {CandidateStatusContacted},
	CandidateStatusContacted: {CandidateStatusQualified, CandidateStatusRejected},
	CandidateStatusQualified: {
		CandidateStatusNextInterview, CandidateStatusOnHold,
		CandidateStatusRejected, CandidateStatusHired,
	},
	CandidateStatusNextInterview: {
		CandidateStatusNextInterview, CandidateStatusOnHold,
		CandidateStatusRejected, CandidateStatusHired,
	},
	CandidateStatusOnHold: {
		CandidateStatusNextInterview, CandidateStatusOnHold,
		CandidateStatusRejected, CandidateStatusHired,
	},
	CandidateStatusHired: {CandidateStatusOffered},
	CandidateStatusOffered: {
		CandidateStatusOfferAccepted, CandidateStatusOfferDeclined, CandidateStatusHired,
	},
	CandidateStatusOfferAccepted: {CandidateStatusJoined},
	CandidateStatusJoined: {
		CandidateStatusSuccessfulHire, CandidateStatusBadDelivery, CandidateStatusTerminated,
	},
	CandidateStatusRejected:       {},
	CandidateStatusOfferDeclined:  {},
	CandidateStatusSuccessfulHire: {},
	CandidateStatusBadDelivery:    {},
	CandidateStatusTerminated:     {},
}

func (s CandidateStatus) IsValid() bool {
	_, ok := candidateTransitions[s]
	return ok
}

// IsTerminal сообщает, является ли статус конечным. Единственный источник
// истины о терминальности: ни один другой слой эту проверку не повторяет.
func (s CandidateStatus) IsTerminal() bool {
	allowed, ok := candidateTransitions[s]
	return ok && len(allowed) == 0
}

func (s CandidateStatus) CanTransitionTo(newStatus CandidateStatus) bool {
	allowed, ok := candidateTransitions[s]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == newStatus {
			return true
		}
	}
	return false
}

func NewCandidateStatus(status string) (CandidateStatus, error) {
	s := CandidateStatus(status)
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректный статус кандидата")
	}
	return s, nil
}

// InterviewLevel — уровень интервью, от L1 до L4.
type InterviewLevel string

const (
	InterviewLevelL1 InterviewLevel = "L1"
	InterviewLevelL2 InterviewLevel = "L2"
	InterviewLevelL3 InterviewLevel = "L3"
	InterviewLevelL4 InterviewLevel = "L4"
)

func (l InterviewLevel) IsValid() bool {
	switch l {
	case InterviewLevelL1, InterviewLevelL2, InterviewLevelL3, InterviewLevelL4:
		return true
	}
	return false
}

// Rank возвращает порядковый номер уровня: L1 -> 1 ... L4 -> 4.
func (l InterviewLevel) Rank() int {
	switch l {
	case InterviewLevelL1:
		return 1
	case InterviewLevelL2:
		return 2
	case InterviewLevelL3:
		return 3
	case InterviewLevelL4:
		return 4
	}
	return 0
}

func NewInterviewLevel(level string) (InterviewLevel, error) {
	l := InterviewLevel(level)
	if !l.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректный уровень интервью")
	}
	return l, nil
}

// InterviewStatus — состояние записи об интервью.
type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "SCHEDULED"
	InterviewStatusCompleted InterviewStatus = "COMPLETED"
	InterviewStatusCancelled InterviewStatus = "CANCELLED"
)

func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled:
		return true
	}
	return false
}

// InterviewOutcome — решение по завершённому интервью. Значения совпадают
// с целевыми статусами кандидата, на которые это решение переводит.
type InterviewOutcome string

const (
	InterviewOutcomeHired         InterviewOutcome = "HIRED"
	InterviewOutcomeRejected      InterviewOutcome = "REJECTED"
	InterviewOutcomeNextInterview InterviewOutcome = "NEXT_INTERVIEW"
	InterviewOutcomeOnHold        InterviewOutcome = "ON_HOLD"
)

func (o InterviewOutcome) IsValid() bool {
	switch o {
	case InterviewOutcomeHired, InterviewOutcomeRejected,
		InterviewOutcomeNextInterview, InterviewOutcomeOnHold:
		return true
	}
	return false
}

// CandidateStatus возвращает статус кандидата, соответствующий решению.
func (o InterviewOutcome) CandidateStatus() CandidateStatus {
	return CandidateStatus(o)
}

func NewInterviewOutcome(outcome string) (InterviewOutcome, error) {
	o := InterviewOutcome(outcome)
	if !o.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректное решение по интервью")
	}
	return o, nil
}

// OfferStatus — состояние оффера. OFFERED -> ACCEPTED | DECLINED | WITHDRAWN,
// все три конечные для самого оффера.
type OfferStatus string

const (
	OfferStatusOffered   OfferStatus = "OFFERED"
	OfferStatusAccepted  OfferStatus = "ACCEPTED"
	OfferStatusDeclined  OfferStatus = "DECLINED"
	OfferStatusWithdrawn OfferStatus = "WITHDRAWN"
)

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusOffered, OfferStatusAccepted, OfferStatusDeclined, OfferStatusWithdrawn:
		return true
	}
	return false
}

// IsResponded сообщает, получен ли уже ответ по офферу.
func (s OfferStatus) IsResponded() bool {
	return s != OfferStatusOffered
}

// JobOrderStatus — состояние вакансии.
type JobOrderStatus string

const (
	JobOrderStatusOpen      JobOrderStatus = "OPEN"
	JobOrderStatusOnHold    JobOrderStatus = "ON_HOLD"
	JobOrderStatusClosed    JobOrderStatus = "CLOSED"
	JobOrderStatusCancelled JobOrderStatus = "CANCELLED"
)

func (s JobOrderStatus) IsValid() bool {
	switch s {
	case JobOrderStatusOpen, JobOrderStatusOnHold, JobOrderStatusClosed, JobOrderStatusCancelled:
		return true
	}
	return false
}

// CompanyStatus — состояние компании-клиента.
type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "ACTIVE"
	CompanyStatusInactive CompanyStatus = "INACTIVE"
)

func (s CompanyStatus) IsValid() bool {
	return s == CompanyStatusActive || s == CompanyStatusInactive
}

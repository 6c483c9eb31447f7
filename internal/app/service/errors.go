package service

// ViolationKind - категория нарушенного бизнес-правила
type ViolationKind string

const (
	KindConflict         ViolationKind = "conflict"
	KindInvalidReference ViolationKind = "invalid_reference"
	KindInvalidRange     ViolationKind = "invalid_range"
	KindScheduleConflict ViolationKind = "schedule_conflict"
)

// RuleViolation - типизированная ошибка бизнес-валидации. Поднимается
// строго до записи в базу; отсутствие строки ошибкой не является и
// возвращается nil-значением.
type RuleViolation struct {
	Kind    ViolationKind
	Message string
}

func (e *RuleViolation) Error() string {
	return e.Message
}

func conflict(message string) *RuleViolation {
	return &RuleViolation{Kind: KindConflict, Message: message}
}

func invalidReference(message string) *RuleViolation {
	return &RuleViolation{Kind: KindInvalidReference, Message: message}
}

func invalidRange(message string) *RuleViolation {
	return &RuleViolation{Kind: KindInvalidRange, Message: message}
}

func scheduleConflict(message string) *RuleViolation {
	return &RuleViolation{Kind: KindScheduleConflict, Message: message}
}

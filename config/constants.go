package config

const (
	DateLayout     string = "2006-01-02"
	ErrEnvNotFound string = "No .env file found"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// ExportLimit caps the number of rows written to a spreadsheet export.
	ExportLimit = 1000

	// Status values
	StatusActive    string = "ACTIVE"
	StatusInactive  string = "INACTIVE"
	StatusDraft     string = "DRAFT"
	StatusPending   string = "PENDING"
	StatusSuspended string = "SUSPENDED"
)

var (
	STATUSES = []string{StatusActive, StatusInactive, StatusDraft}

	INSTRUCTOR_STATUSES = []string{StatusActive, StatusInactive, StatusPending, StatusSuspended}

	ACCESS_LEVELS = []string{
		"PUBLIC",
		"REGISTERED_ONLY",
		"RESTRICTED",
		"STUDENTS_ONLY",
		"STAFF_ONLY",
		"PREMIUM",
	}

	SUBJECT_TYPES = []string{
		"CORE",
		"MAJOR",
		"ELECTIVE",
		"GENERAL_EDUCATION",
		"FREE_ELECTIVE",
		"PREREQUISITE",
		"SEMINAR",
		"INTERNSHIP",
		"PROJECT",
		"THESIS",
	}

	DIFFICULTIES = []string{"BEGINNER", "INTERMEDIATE", "ADVANCED", "EXPERT"}

	ENROLLMENT_TYPES = []string{
		"FORMAL",
		"AUDIT",
		"CONTINUING_ED",
		"SKILL_TRAINING",
		"FREE_ACCESS",
		"TRIAL",
	}

	ENROLLMENT_STATUSES = []string{"IN_PROGRESS", "COMPLETED", "DROPPED", "SUSPENDED"}

	PAYMENT_STATUSES = []string{"PENDING", "PAID", "FAILED", "REFUNDED"}

	CERTIFICATE_TYPES = []string{
		"COMPLETION",
		"PARTICIPATION",
		"SKILL_BADGE",
		"PROFESSIONAL",
		"CONTINUING_ED",
	}

	USER_ROLES = []string{"admin", "super_admin", "instructor", "student"}

	ADMIN_ROLES = []string{"admin", "super_admin"}
)

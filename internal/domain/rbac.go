package domain

// EnforceRequest asks whether an employee of a company may perform action on resource.
type EnforceRequest struct {
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Resource   string `json:"resource" form:"resource" binding:"required"`
	Action     string `json:"action" form:"action" binding:"required"`
}

type EnforceResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Allowed  bool   `json:"allowed"`
}

// Onboarding resources and actions seeded in the permissions table.
const (
	ResourceOnboarding        = "onboarding"
	ResourceOnboardingCatalog = "onboarding_catalog"

	ActionRead     = "read"
	ActionManage   = "manage"
	ActionVerify   = "verify"
	ActionActivate = "activate"
)

package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company. Every onboarding table carries company_id.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// EmployeeScope restricts a query to one employee of one company.
func EmployeeScope(companyID, employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(Scope(companyID)).Where("employee_id = ?", employeeID)
	}
}

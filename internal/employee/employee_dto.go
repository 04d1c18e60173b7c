package employee

import "time"

type Profile struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	HireDate  *time.Time `json:"hire_date,omitempty"`
}

func mapToProfile(e Employee) Profile {
	return Profile{
		ID:        e.ID.String(),
		CompanyID: e.CompanyID.String(),
		FullName:  e.FullName,
		Email:     e.Email,
		HireDate:  e.HireDate,
	}
}

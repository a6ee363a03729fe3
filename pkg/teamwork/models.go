package teamwork

// Account represents the account.json and authenticate.json responses.
type Account struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Code        string `json:"code"        yaml:"code"`
	URL         string `json:"URL"         yaml:"url"`
	CompanyName string `json:"companyname" yaml:"company_name"`
	CompanyID   string `json:"companyid"   yaml:"company_id"`
	UserID      string `json:"userId"      yaml:"user_id"`
	FirstName   string `json:"firstname"   yaml:"first_name"`
	LastName    string `json:"lastname"    yaml:"last_name"`
	Lang        string `json:"lang"        yaml:"lang"`
	SSLEnabled  bool   `json:"ssl-enabled" yaml:"ssl_enabled"`
}

// Person represents a Teamwork user.
type Person struct {
	ID            string `json:"id"            yaml:"id"`
	FirstName     string `json:"first-name"    yaml:"first_name"`
	LastName      string `json:"last-name"     yaml:"last_name"`
	EmailAddress  string `json:"email-address" yaml:"email_address"`
	UserName      string `json:"user-name"     yaml:"user_name"`
	CompanyID     string `json:"company-id"    yaml:"company_id"`
	CompanyName   string `json:"company-name"  yaml:"company_name"`
	Title         string `json:"title"         yaml:"title"`
	Administrator bool   `json:"administrator" yaml:"administrator"`
}

// FullName joins the first and last name.
func (p Person) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

package element

// Envelope carries the fields shared by every add request. The owner
// id is deliberately absent: it always comes from the authenticated
// caller, never from the request body.
type Envelope struct {
	Name        string `json:"name" doc:"Display name of the element"`
	Description string `json:"description"`
	Favorite    bool   `json:"favorite"`
}

type AddLoginRequest struct {
	Envelope
	Login    string `json:"login"`
	Password string `json:"password"`
	URL      string `json:"url"`
}

type AddCardRequest struct {
	Envelope
	OwnersName   string `json:"owners_name"`
	Number       string `json:"number"`
	Type         string `json:"card_type"`
	ExpiryMonth  string `json:"expiry_month"`
	ExpiryYear   string `json:"expiry_year"`
	SecurityCode string `json:"security_code"`
}

type AddPersonalInfoRequest struct {
	Envelope
	FirstName    string `json:"first_name"`
	SecondName   string `json:"second_name"`
	LastName     string `json:"last_name"`
	Company      string `json:"company"`
	Mail         string `json:"mail"`
	Telephone    string `json:"telephone"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalIndex  string `json:"postal_index"`
	Country      string `json:"country"`
	Folder       string `json:"folder" doc:"Optional grouping hint"`
}

type AddNoteRequest struct {
	Envelope
}

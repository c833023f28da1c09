package element

import "github.com/google/uuid"

type Kind string

const (
	KindLogin    Kind = "login"
	KindCard     Kind = "card"
	KindPersonal Kind = "personal_info"
	KindNote     Kind = "note"
)

// Data is the variant payload of an element. Exactly one variant is
// attached to an element; the types below are the only
// implementations.
type Data interface {
	Kind() Kind
}

// Element is a stored secret: a common envelope plus one variant
// payload. OwnerID references the owning user but carries no cascade
// semantics; deleting an element never touches the user.
type Element struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Favorite    bool
	Data        Data
}

// LoginData is a saved site credential.
type LoginData struct {
	Login    string
	Password string
	URL      string
}

func (LoginData) Kind() Kind { return KindLogin }

// CardData is a saved payment card.
type CardData struct {
	OwnersName   string
	Number       string
	Type         string
	ExpiryMonth  string
	ExpiryYear   string
	SecurityCode string
}

func (CardData) Kind() Kind { return KindCard }

// PersonalData is a saved personal-information profile.
type PersonalData struct {
	FirstName    string
	SecondName   string
	LastName     string
	Company      string
	Mail         string
	Telephone    string
	AddressLine1 string
	AddressLine2 string
	City         string
	Region       string
	PostalIndex  string
	Country      string
	Folder       string
}

func (PersonalData) Kind() Kind { return KindPersonal }

// NoteData has no fields of its own; a note is just the envelope.
type NoteData struct{}

func (NoteData) Kind() Kind { return KindNote }

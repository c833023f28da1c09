package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"passvault/internal/domain/element"
)

type ElementRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewElementRepository(pool *pgxpool.Pool, log *slog.Logger) *ElementRepository {
	return &ElementRepository{
		pool: pool,
		log:  log.With("component", "element_repository"),
	}
}

// elementRow flattens the variant union onto the nullable columns of
// the elements table. Columns of the other variants stay NULL.
type elementRow struct {
	login        *string
	password     *string
	url          *string
	ownersName   *string
	number       *string
	cardType     *string
	expiryMonth  *string
	expiryYear   *string
	securityCode *string
	firstName    *string
	secondName   *string
	lastName     *string
	company      *string
	mail         *string
	telephone    *string
	addressLine1 *string
	addressLine2 *string
	city         *string
	region       *string
	postalIndex  *string
	country      *string
	folder       *string
}

func (r *ElementRepository) Create(ctx context.Context, el element.Element) (element.Element, error) {
	row, err := flatten(el.Data)
	if err != nil {
		return element.Element{}, err
	}

	const query = `
		INSERT INTO elements (
			owner_id, kind, name, description, favorite,
			login, password, url,
			owners_name, number, card_type, expiry_month, expiry_year, security_code,
			first_name, second_name, last_name, company, mail, telephone,
			address_line_1, address_line_2, city, region, postal_index, country, folder
		)
		VALUES ($1, $2, $3, $4, $5,
		        $6, $7, $8,
		        $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27)
		RETURNING id`

	err = r.pool.QueryRow(ctx, query,
		el.OwnerID, string(el.Data.Kind()), el.Name, el.Description, el.Favorite,
		row.login, row.password, row.url,
		row.ownersName, row.number, row.cardType, row.expiryMonth, row.expiryYear, row.securityCode,
		row.firstName, row.secondName, row.lastName, row.company, row.mail, row.telephone,
		row.addressLine1, row.addressLine2, row.city, row.region, row.postalIndex, row.country, row.folder,
	).Scan(&el.ID)

	if err != nil {
		r.log.Error("failed to create element",
			"owner_id", el.OwnerID, "kind", el.Data.Kind(), "error", err)
		return element.Element{}, fmt.Errorf("create element: %w", err)
	}

	return el, nil
}

func flatten(data element.Data) (elementRow, error) {
	var row elementRow

	switch d := data.(type) {
	case element.LoginData:
		row.login = &d.Login
		row.password = &d.Password
		row.url = &d.URL
	case element.CardData:
		row.ownersName = &d.OwnersName
		row.number = &d.Number
		row.cardType = &d.Type
		row.expiryMonth = &d.ExpiryMonth
		row.expiryYear = &d.ExpiryYear
		row.securityCode = &d.SecurityCode
	case element.PersonalData:
		row.firstName = &d.FirstName
		row.secondName = &d.SecondName
		row.lastName = &d.LastName
		row.company = &d.Company
		row.mail = &d.Mail
		row.telephone = &d.Telephone
		row.addressLine1 = &d.AddressLine1
		row.addressLine2 = &d.AddressLine2
		row.city = &d.City
		row.region = &d.Region
		row.postalIndex = &d.PostalIndex
		row.country = &d.Country
		row.folder = &d.Folder
	case element.NoteData:
		// Envelope only.
	default:
		return row, fmt.Errorf("%w: %T", element.ErrUnknownKind, data)
	}

	return row, nil
}

package response

import (
	"time"

	"benefit-desk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DocumentMetaResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

type MemberProfileResponse struct {
	ID            uuid.UUID             `json:"id"`
	MemberNumber  string                `json:"memberNumber"`
	FirstName     string                `json:"firstName"`
	LastName      string                `json:"lastName"`
	Phone         string                `json:"phone"`
	Email         string                `json:"email"`
	Address       string                `json:"address"`
	City          string                `json:"city"`
	PostalCode    string                `json:"postalCode"`
	MaritalStatus string                `json:"maritalStatus"`
	PortraitPhoto *DocumentMetaResponse `json:"portraitPhoto,omitempty"`
	IdentityImage *DocumentMetaResponse `json:"identityImage,omitempty"`
	BankReference *DocumentMetaResponse `json:"bankReference,omitempty"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

type SpouseResponse struct {
	ID                  uuid.UUID             `json:"id"`
	FirstName           string                `json:"firstName"`
	LastName            string                `json:"lastName"`
	IdentityNumber      string                `json:"identityNumber"`
	BirthDate           *time.Time            `json:"birthDate,omitempty"`
	Gender              string                `json:"gender"`
	Phone               string                `json:"phone"`
	Email               string                `json:"email"`
	City                string                `json:"city"`
	PortraitPhoto       *DocumentMetaResponse `json:"portraitPhoto,omitempty"`
	IdentityImage       *DocumentMetaResponse `json:"identityImage,omitempty"`
	MarriageCertificate *DocumentMetaResponse `json:"marriageCertificate,omitempty"`
}

type DependentResponse struct {
	ID                uuid.UUID             `json:"id"`
	FirstName         string                `json:"firstName"`
	LastName          string                `json:"lastName"`
	BirthDate         *time.Time            `json:"birthDate,omitempty"`
	Gender            string                `json:"gender"`
	IdentityNumber    string                `json:"identityNumber"`
	Phone             string                `json:"phone"`
	Email             string                `json:"email"`
	EducationLevel    string                `json:"educationLevel"`
	PortraitPhoto     *DocumentMetaResponse `json:"portraitPhoto,omitempty"`
	IdentityImage     *DocumentMetaResponse `json:"identityImage,omitempty"`
	SchoolCertificate *DocumentMetaResponse `json:"schoolCertificate,omitempty"`
}

type HouseholdResponse struct {
	Member     MemberProfileResponse `json:"member"`
	Spouses    []SpouseResponse      `json:"spouses"`
	Dependents []DependentResponse   `json:"dependents"`
}

func FromHouseholdView(v *queries.HouseholdView) (*HouseholdResponse, error) {
	var resp HouseholdResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

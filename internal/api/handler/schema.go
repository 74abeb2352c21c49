package handler

import (
	"github.com/eduplay/platform-api/internal/core/domain"
)

type registerRequest struct {
	UserName    string `json:"userName"    validate:"notblank"`
	Password    string `json:"password"    validate:"notblank"`
	Email       string `json:"email"       validate:"notblank"`
	PhoneNumber string `json:"phoneNumber" validate:"notblank"`
	EmployeeID  string `json:"employeeId"  validate:"notblank"`
	CreatorName string `json:"creatorName" validate:"notblank"`
	Profession  string `json:"profession"  validate:"notblank"`
	Biography   string `json:"biography"   validate:"notblank"`
}

func (registerRequest) validationMessage() string { return domain.ErrFieldsRequired.Message }

type loginRequest struct {
	UserName string `json:"userName" validate:"required_without=Email"`
	Email    string `json:"email"    validate:"required_without=UserName"`
	Password string `json:"password"`
}

func (loginRequest) validationMessage() string { return domain.ErrIdentifierRequired.Message }

// refreshRequest is only read when the refreshToken cookie is absent.
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type registerGameRequest struct {
	GameTitle         string `json:"gametitle"         validate:"notblank"`
	Age               string `json:"age"               validate:"notblank"`
	Gender            string `json:"gender"            validate:"notblank"`
	Category          string `json:"category"          validate:"notblank"`
	Subcategory       string `json:"subcategory"       validate:"notblank"`
	HowToPlay         string `json:"howtoplay"         validate:"notblank"`
	BenefitsOfPlaying string `json:"benefitsofplaying" validate:"notblank"`
	ItemsRequired     string `json:"itemsrequied"      validate:"notblank"`
	URL               string `json:"url"               validate:"notblank"`
	Score             string `json:"score"             validate:"notblank"`
	Level             string `json:"level"             validate:"notblank"`
}

func (registerGameRequest) validationMessage() string { return domain.ErrFieldsRequired.Message }

type loginData struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type tokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
